package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rsilva/bankapi/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankapi-cli",
		Short: "Bank API CLI tool",
		Long:  `A command line interface for interacting with the bank account API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the bank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(transactionCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var name string
	var balance, specialLimit string

	createCmd := &cobra.Command{
		Use:   "create [number]",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postRequest("/api/v1/accounts/", map[string]any{
				"number":        jsonNumber(args[0]),
				"name":          name,
				"balance":       balance,
				"special_limit": specialLimit,
			})
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Account holder name")
	createCmd.Flags().StringVar(&balance, "balance", "0", "Initial balance")
	createCmd.Flags().StringVar(&specialLimit, "special-limit", "0", "Overdraft limit")

	getCmd := &cobra.Command{
		Use:   "get [number]",
		Short: "Get an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getRequest("/api/v1/accounts/" + args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getRequest("/api/v1/accounts/")
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [number]",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteRequest("/api/v1/accounts/" + args[0])
		},
	}

	cmd.AddCommand(createCmd, getCmd, listCmd, deleteCmd)
	return cmd
}

func transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Transaction operations",
	}

	depositCmd := &cobra.Command{
		Use:   "deposit [account] [amount]",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postRequest("/api/v1/transactions/deposit", map[string]any{
				"receiver_account_number": jsonNumber(args[0]),
				"amount":                  args[1],
			})
		},
	}

	withdrawCmd := &cobra.Command{
		Use:   "withdraw [account] [amount]",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postRequest("/api/v1/transactions/withdraw", map[string]any{
				"source_account_number": jsonNumber(args[0]),
				"amount":                args[1],
			})
		},
	}

	transferCmd := &cobra.Command{
		Use:   "transfer [source] [receiver] [amount]",
		Short: "Transfer between accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postRequest("/api/v1/transactions/transfer", map[string]any{
				"source_account_number":   jsonNumber(args[0]),
				"receiver_account_number": jsonNumber(args[1]),
				"amount":                  args[2],
			})
		},
	}

	cmd.AddCommand(depositCmd, withdrawCmd, transferCmd)
	return cmd
}

func migrateCmd() *cobra.Command {
	var databaseURL, migrationsPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrations(databaseURL, migrationsPath)
		},
	}

	cmd.Flags().StringVar(&databaseURL, "database-url",
		os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
	cmd.Flags().StringVar(&migrationsPath, "migrations",
		"internal/infrastructure/postgres/migrations", "Path to migration files")

	return cmd
}

// jsonNumber keeps account numbers numeric in request bodies without
// forcing callers to validate them client-side.
func jsonNumber(s string) json.Number {
	return json.Number(s)
}

func getRequest(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postRequest(path string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func deleteRequest(path string) error {
	req, err := http.NewRequest(http.MethodDelete, baseURL+path, nil)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if len(body) == 0 {
		fmt.Printf("Status: %d\n", resp.StatusCode)
		return nil
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(parsed)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(out))
}
