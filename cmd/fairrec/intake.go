package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rushteam/fairrec/intake"
)

func newIntakeCmd() *cobra.Command {
	var (
		dir      string
		filename string
	)

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Collect student details and save them with an encrypted copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := newPrompter(cmd.InOrStdin(), out)

			name, err := p.askUntil("Enter student name: ", "Value cannot be empty. Please try again.",
				func(s string) bool { return s != "" })
			if err != nil {
				return err
			}
			ageText, err := p.askUntil("Enter student age: ", "Please enter a valid age between 0 and 150.",
				func(s string) bool { _, ok := intake.ParseAge(s); return ok })
			if err != nil {
				return err
			}
			email, err := p.askUntil("Enter student email: ", "Please enter a valid email address (e.g., name@example.com).",
				intake.ValidEmail)
			if err != nil {
				return err
			}
			age, _ := strconv.Atoi(ageText)

			path, err := intake.Save(dir, filename, intake.Details{Name: name, Age: age, Email: email}, time.Now())
			if err != nil {
				return err
			}

			passphrase, err := p.askUntil("Enter encryption key to create encrypted file: ", "Value cannot be empty. Please try again.",
				func(s string) bool { return s != "" })
			if err != nil {
				return err
			}
			encrypted, err := intake.EncryptCopy(path, passphrase)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Saved student details to: %s\n", path)
			fmt.Fprintf(out, "Saved encrypted student details to: %s\n", encrypted)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "output directory")
	cmd.Flags().StringVar(&filename, "file", "", "output file name (default student_YYYYMMDD_HHMMSS.txt)")
	cmd.AddCommand(newIntakeDecryptCmd())
	return cmd
}

func newIntakeDecryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <encrypted-file>",
		Short: "Print the plaintext of an encrypted copy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envelope, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			passphrase, err := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()).ask("Enter encryption key: ")
			if err != nil {
				return err
			}
			plaintext, err := intake.Decrypt(string(envelope), passphrase)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(plaintext)
			return err
		},
	}
}
