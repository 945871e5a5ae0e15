package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// PrimeCommandHandler encapsulates logic for primality checks, prime generation and factorisation via CLI.
type PrimeCommandHandler struct {
	load func(cmd *cobra.Command) (*commandContext, error)
}

// NewPrimeCommandHandler initializes a new PrimeCommandHandler.
func NewPrimeCommandHandler() *PrimeCommandHandler {
	return &PrimeCommandHandler{load: loadCommandContext}
}

// IsPrimeCmd prints whether --n is a probable prime
func (commandHandler *PrimeCommandHandler) IsPrimeCmd(cmd *cobra.Command, _ []string) error {
	c, err := commandHandler.load(cmd)
	if err != nil {
		return err
	}

	n, err := bigIntFlag(cmd, "n")
	if err != nil {
		c.logger.Error(err)
		return err
	}

	isPrime, err := c.processors.Oracle.CheckPrime(n, c.config.RSA.Rounds)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), isPrime)
	return nil
}

// GeneratePrimeCmd prints a probable prime with exactly --bits bits
func (commandHandler *PrimeCommandHandler) GeneratePrimeCmd(cmd *cobra.Command, _ []string) error {
	c, err := commandHandler.load(cmd)
	if err != nil {
		return err
	}

	bits, err := cmd.Flags().GetUint("bits")
	if err != nil {
		return fmt.Errorf("invalid bits flag: %w", err)
	}

	prime, err := c.processors.Primes.Generate(bits)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), prime.String())
	return nil
}

// FactorCmd prints the prime factorisation of --n in ascending order
func (commandHandler *PrimeCommandHandler) FactorCmd(cmd *cobra.Command, _ []string) error {
	c, err := commandHandler.load(cmd)
	if err != nil {
		return err
	}

	n, err := bigIntFlag(cmd, "n")
	if err != nil {
		c.logger.Error(err)
		return err
	}

	factors, err := c.processors.Arithmetic.PrimeFactors(n)
	if err != nil {
		c.logger.Error(err)
		return err
	}

	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = f.String()
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
	return nil
}

// InitPrimeCommands registers prime-related commands
func InitPrimeCommands(rootCmd *cobra.Command) error {
	handler := NewPrimeCommandHandler()

	var isPrimeCmd = &cobra.Command{
		Use:   "is-prime",
		Short: "Check whether an integer is a probable prime (Miller-Rabin)",
		RunE:  handler.IsPrimeCmd,
	}
	isPrimeCmd.Flags().StringP("n", "", "", "Decimal integer to test (>= 2)")
	rootCmd.AddCommand(isPrimeCmd)

	var generatePrimeCmd = &cobra.Command{
		Use:   "generate-prime",
		Short: "Generate a probable prime of a given bit length",
		RunE:  handler.GeneratePrimeCmd,
	}
	generatePrimeCmd.Flags().UintP("bits", "", 64, "Bit length of the prime (>= 2)")
	rootCmd.AddCommand(generatePrimeCmd)

	var factorCmd = &cobra.Command{
		Use:   "factor",
		Short: "Factorise a small integer by trial division",
		RunE:  handler.FactorCmd,
	}
	factorCmd.Flags().StringP("n", "", "", "Decimal integer to factorise (2 <= n < 2^64)")
	rootCmd.AddCommand(factorCmd)

	return nil
}
