package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var serverURL string

type ResponseError struct {
	Message string `json:"error"`
}

var apiServiceBase = func() *resty.Client {
	return resty.New().
		SetBaseURL(serverURL).
		SetHeader("Accept", "application/json").
		SetError(&ResponseError{}).
		OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() >= 400 {
				return fmt.Errorf("%s", resp.Error().(*ResponseError).Message)
			}

			return nil
		})
}

var rootCmd = &cobra.Command{
	Use:   "activitylog",
	Short: "Activity log service CLI",
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check service health",
	Run: func(cmd *cobra.Command, args []string) {
		type healthResponse struct {
			Status    string `json:"status"`
			Service   string `json:"service"`
			Timestamp string `json:"timestamp"`
			Version   string `json:"version"`
		}

		resp, err := apiServiceBase().R().
			SetResult(&healthResponse{}).
			Get("/health")

		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		health := resp.Result().(*healthResponse)

		fmt.Println("Status  :", health.Status)
		fmt.Println("Service :", health.Service)
		fmt.Println("Version :", health.Version)
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs <email>",
	Short: "Show recent activity for a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		type logEntry struct {
			ID           int    `json:"id"`
			UserEmail    string `json:"user_email"`
			Timestamp    string `json:"timestamp"`
			ActivityType string `json:"activity_type"`
		}
		type logsResponse struct {
			Logs []logEntry `json:"logs"`
		}

		resp, err := apiServiceBase().R().
			SetQueryParam("user_email", args[0]).
			SetResult(&logsResponse{}).
			Get("/api/logs")

		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		logs := resp.Result().(*logsResponse).Logs
		if len(logs) == 0 {
			fmt.Println("No activity recorded")
			return
		}

		for _, entry := range logs {
			fmt.Printf("%-4d %-25s %s\n", entry.ID, entry.ActivityType, entry.Timestamp)
		}
	},
}

var notifyCmd = &cobra.Command{
	Use:   "notify <email>",
	Short: "Send a notification to a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		type notifyResponse struct {
			Status    string `json:"status"`
			MessageID string `json:"message_id"`
			UserEmail string `json:"user_email"`
			Timestamp string `json:"timestamp"`
		}

		resp, err := apiServiceBase().R().
			SetBody(map[string]string{"user_email": args[0]}).
			SetResult(&notifyResponse{}).
			Post("/api/send-notification")

		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		notification := resp.Result().(*notifyResponse)

		fmt.Println("Status     :", notification.Status)
		fmt.Println("Message ID :", notification.MessageID)
		fmt.Println("User       :", notification.UserEmail)
	},
}

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Dump service debug information",
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := apiServiceBase().R().Get("/debug")
		if err != nil {
			fmt.Println("Error:", err)
			return
		}

		var pretty map[string]any
		if err := json.Unmarshal(resp.Body(), &pretty); err != nil {
			fmt.Println("Error:", err)
			return
		}

		out, _ := json.MarshalIndent(pretty, "", "  ")
		fmt.Println(string(out))
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:3000", "Base URL of the activity log service")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(debugCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
