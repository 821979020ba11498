// Command client is a small terminal client for the fintrack API. It logs
// in with the given credentials and runs a single read command, which makes
// it handy for smoke-testing a running server.
package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/fintrack/fintrack/internal/logger"
	"github.com/fintrack/fintrack/models"
	"github.com/fintrack/fintrack/pkg/client"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	addr := flag.String("addr", "http://localhost:8080", "base URL of the fintrack server")
	login := flag.String("login", "", "account login")
	password := flag.String("password", "", "account password")
	since := flag.Int64("since", 0, "unix timestamp for the updated command")
	flag.Parse()

	log := logger.NewLogger("fintrack-client")

	command := flag.Arg(0)
	if command == "" {
		command = "me"
	}

	cli := client.New(client.Config{BaseURL: *addr, Timeout: 15 * time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := cli.Login(ctx, *login, *password); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}

	if err := run(ctx, cli, command, *since); err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}
}

func run(ctx context.Context, cli *client.Client, command string, since int64) error {
	switch command {
	case "me":
		user, err := cli.CurrentUser(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("#%d %s (%s)\n", user.ID, user.Username, user.Login)

	case "transactions":
		page, err := cli.Transactions(ctx, models.TransactionPageQuery{})
		if err != nil {
			return err
		}
		for _, transaction := range page.Items {
			fmt.Printf("#%d %s %.2f %s\n", transaction.ID, transaction.Title, transaction.Amount, transaction.DoneAt.Format(time.DateOnly))
		}
		fmt.Printf("total: %d, more pages: %v\n", page.Pagination.Total, page.Pagination.HasNext)

	case "categories":
		categories, err := cli.Categories(ctx)
		if err != nil {
			return err
		}
		for _, category := range categories {
			owner := "system"
			if category.UserID != nil {
				owner = "user " + strconv.FormatInt(*category.UserID, 10)
			}
			fmt.Printf("#%d %s (%s)\n", category.ID, category.Name, owner)
		}

	case "updated":
		ids, err := cli.UpdatedTransactionIDs(ctx, time.Unix(since, 0))
		if err != nil {
			return err
		}
		fmt.Printf("changed transactions: %v\n", ids)

	default:
		return fmt.Errorf("unknown command %q", command)
	}

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
