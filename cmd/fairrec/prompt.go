package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter 逐行读取交互输入。
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask 输出提示并读取一行（已去除首尾空白）。输入结束且没有内容时返回 io.EOF。
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askUntil 重复提问直到 accept 返回 true，每次拒绝后输出 retry。
func (p *prompter) askUntil(prompt, retry string, accept func(string) bool) (string, error) {
	for {
		v, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		if accept(v) {
			return v, nil
		}
		fmt.Fprintln(p.out, retry)
	}
}
