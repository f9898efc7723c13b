// Command cli is a small terminal client for the task tracker API.
//
// Usage:
//
//	cli -s http://localhost:8080 register <name> <email>
//	cli -s http://localhost:8080 login <email>
//	cli -s http://localhost:8080 -t <token> list
//	cli -s http://localhost:8080 -t <token> add <title> [description]
//	cli -s http://localhost:8080 -t <token> complete <id>
//	cli -s http://localhost:8080 -t <token> delete <id>
//
// register and login prompt for the password without echo and print the
// access token to use with -t on subsequent calls.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/akarpovs/tasktracker/internal/client"
)

func main() {
	server := flag.String("s", "http://localhost:8080", "server base URL")
	token := flag.String("t", "", "access token")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: cli [-s server] [-t token] <register|login|list|add|complete|delete> [args]")
		os.Exit(2)
	}

	ctx := context.Background()
	c := client.New(*server, *token)

	if err := run(ctx, c, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client, args []string) error {

	switch args[0] {

	case "register":
		if len(args) != 3 {
			return fmt.Errorf("usage: register <name> <email>")
		}
		password, err := client.GetPassword(os.Stdout, "Enter password: ")
		if err != nil {
			return err
		}
		token, err := c.Register(ctx, args[1], args[2], password)
		if err != nil {
			return err
		}
		fmt.Println("registered, token:", token)

	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: login <email>")
		}
		password, err := client.GetPassword(os.Stdout, "Enter password: ")
		if err != nil {
			return err
		}
		token, err := c.Login(ctx, args[1], password)
		if err != nil {
			return err
		}
		fmt.Println("token:", token)

	case "list":
		tasks, err := c.ListTasks(ctx)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			due := ""
			if t.DueDate != nil {
				due = " due " + t.DueDate.Format("2006-01-02")
			}
			fmt.Printf("%s  [%s/%s]%s  %s\n", t.ID, t.Status, t.Priority, due, t.Title)
		}

	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: add <title> [description]")
		}
		description := ""
		if len(args) > 2 {
			description = args[2]
		}
		task, err := c.AddTask(ctx, args[1], description, "")
		if err != nil {
			return err
		}
		fmt.Println("created:", task.ID)

	case "complete":
		if len(args) != 2 {
			return fmt.Errorf("usage: complete <id>")
		}
		task, err := c.CompleteTask(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s is now %s\n", task.ID, task.Status)

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: delete <id>")
		}
		if err := c.DeleteTask(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("deleted:", args[1])

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}

	return nil
}
