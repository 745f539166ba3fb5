// Package intake 收集学生信息，保存为文本文件，并生成一份加密副本。
package intake

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rushteam/fairrec/core"
)

var validate = validator.New()

// Details 是一条学生信息。
type Details struct {
	Name  string `validate:"required"`
	Age   int    `validate:"gte=0,lte=150"`
	Email string `validate:"required,email"`
}

// Validate 校验字段，失败时返回 INVALID_INPUT。
func (d Details) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return core.NewDomainError(core.ModuleIntake, core.ErrorCodeInvalidInput, "name cannot be empty")
	}
	if err := validate.Struct(d); err != nil {
		return core.WrapDomainError(core.ModuleIntake, core.ErrorCodeInvalidInput, "invalid student details", err)
	}
	return nil
}

// Render 返回保存到文件的文本。
func (d Details) Render() string {
	return fmt.Sprintf("Student Details\n================\nName:  %s\nAge:   %d\nEmail: %s\n", d.Name, d.Age, d.Email)
}

// DefaultFilename 返回 student_YYYYMMDD_HHMMSS.txt。
func DefaultFilename(now time.Time) string {
	return "student_" + now.Format("20060102_150405") + ".txt"
}

// Save 校验后写入 dir/filename，filename 为空时按 now 生成；dir 不存在时创建。返回文件路径。
func Save(dir, filename string, d Details, now time.Time) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if filename == "" {
		filename = DefaultFilename(now)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(d.Render()), 0o600); err != nil {
		return "", fmt.Errorf("write student details: %w", err)
	}
	return path, nil
}

// ParseAge 解析年龄：只接受数字，范围 [0, 150]。
func ParseAge(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	age, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if validate.Var(age, "gte=0,lte=150") != nil {
		return 0, false
	}
	return age, true
}

// ValidEmail 要求包含 @ 且域名部分带点，并能通过 email 格式校验。
func ValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.LastIndex(s, "@")
	if at < 0 || !strings.Contains(s[at+1:], ".") {
		return false
	}
	return validate.Var(s, "email") == nil
}
