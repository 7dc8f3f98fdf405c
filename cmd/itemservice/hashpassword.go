package main

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/erazemk/itemservice/internal/auth"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print a bcrypt hash for auth.password_hash",
	Long: `Prints a bcrypt hash to put in auth.password_hash (or the
ITEMSERVICE_AUTH_PASSWORD_HASH environment variable).

Without an argument a random password is generated and printed too.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHashPassword,
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		generated, err := generatePassword(16)
		if err != nil {
			return fmt.Errorf("generating password: %w", err)
		}
		password = generated
		fmt.Fprintf(out, "Password: %s\n", password)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Hash:     %s\n", hash)
	return nil
}

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}
