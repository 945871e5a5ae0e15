package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ArithmeticCommandHandler encapsulates logic for gcd and modular inverse via CLI.
type ArithmeticCommandHandler struct {
	load func(cmd *cobra.Command) (*commandContext, error)
}

// NewArithmeticCommandHandler initializes a new ArithmeticCommandHandler.
func NewArithmeticCommandHandler() *ArithmeticCommandHandler {
	return &ArithmeticCommandHandler{load: loadCommandContext}
}

// GCDCmd prints gcd(--a, --b)
func (commandHandler *ArithmeticCommandHandler) GCDCmd(cmd *cobra.Command, _ []string) error {
	c, err := commandHandler.load(cmd)
	if err != nil {
		return err
	}

	a, err := bigIntFlag(cmd, "a")
	if err != nil {
		c.logger.Error(err)
		return err
	}
	b, err := bigIntFlag(cmd, "b")
	if err != nil {
		c.logger.Error(err)
		return err
	}

	gcd, err := c.processors.Arithmetic.GCD(a, b)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), gcd.String())
	return nil
}

// ModInverseCmd prints d with --e * d = 1 (mod --phi)
func (commandHandler *ArithmeticCommandHandler) ModInverseCmd(cmd *cobra.Command, _ []string) error {
	c, err := commandHandler.load(cmd)
	if err != nil {
		return err
	}

	e, err := bigIntFlag(cmd, "e")
	if err != nil {
		c.logger.Error(err)
		return err
	}
	phi, err := bigIntFlag(cmd, "phi")
	if err != nil {
		c.logger.Error(err)
		return err
	}

	d, err := c.processors.Arithmetic.ModInverse(e, phi)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), d.String())
	return nil
}

// InitArithmeticCommands registers gcd and modular inverse commands
func InitArithmeticCommands(rootCmd *cobra.Command) error {
	handler := NewArithmeticCommandHandler()

	var gcdCmd = &cobra.Command{
		Use:   "gcd",
		Short: "Compute the greatest common divisor of two integers",
		RunE:  handler.GCDCmd,
	}
	gcdCmd.Flags().StringP("a", "", "", "First decimal integer")
	gcdCmd.Flags().StringP("b", "", "", "Second decimal integer (non-zero)")
	rootCmd.AddCommand(gcdCmd)

	var modInverseCmd = &cobra.Command{
		Use:   "mod-inverse",
		Short: "Compute the modular inverse of e modulo phi",
		RunE:  handler.ModInverseCmd,
	}
	modInverseCmd.Flags().StringP("e", "", "", "Decimal integer to invert")
	modInverseCmd.Flags().StringP("phi", "", "", "Decimal modulus (> 1)")
	rootCmd.AddCommand(modInverseCmd)

	return nil
}
