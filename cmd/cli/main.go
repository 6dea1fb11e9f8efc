package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobank-cli",
		Short: "GoBank CLI tool",
		Long:  `A command line interface for interacting with the GoBank API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoBank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	accountCmd.AddCommand(
		&cobra.Command{
			Use:   "create [holder-name] [balance]",
			Short: "Create a new account",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				body := fmt.Sprintf(`{"accountHolderName":%q,"balance":%s}`, args[0], args[1])
				doRequest(http.MethodPost, "/api/accounts", body)
			},
		},
		&cobra.Command{
			Use:   "get [id]",
			Short: "Get an account by ID",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				doRequest(http.MethodGet, "/api/accounts/"+args[0], "")
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all accounts",
			Run: func(cmd *cobra.Command, args []string) {
				doRequest(http.MethodGet, "/api/accounts", "")
			},
		},
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete an account",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				doRequest(http.MethodDelete, "/api/accounts/"+args[0], "")
			},
		},
		&cobra.Command{
			Use:   "deposit [id] [amount]",
			Short: "Deposit funds into an account",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				doRequest(http.MethodPut, "/api/accounts/"+args[0]+"/deposit", fmt.Sprintf(`{"amount":%s}`, args[1]))
			},
		},
		&cobra.Command{
			Use:   "withdraw [id] [amount]",
			Short: "Withdraw funds from an account",
			Args:  cobra.ExactArgs(2),
			Run: func(cmd *cobra.Command, args []string) {
				doRequest(http.MethodPut, "/api/accounts/"+args[0]+"/withdraw", fmt.Sprintf(`{"amount":%s}`, args[1]))
			},
		},
		&cobra.Command{
			Use:   "transactions [id]",
			Short: "List the transactions of an account",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				doRequest(http.MethodGet, "/api/accounts/"+args[0]+"/transactions", "")
			},
		},
	)

	transferCmd := &cobra.Command{
		Use:   "transfer [from-id] [to-id] [amount]",
		Short: "Transfer funds between accounts",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			body := fmt.Sprintf(`{"fromAccountId":%s,"toAccountId":%s,"amount":%s}`, args[0], args[1], args[2])
			doRequest(http.MethodPost, "/api/accounts/transfer", body)
		},
	}

	rootCmd.AddCommand(accountCmd, transferCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func doRequest(method, path, body string) {
	client := &http.Client{Timeout: timeout}

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	fmt.Println(string(respBody))
}
