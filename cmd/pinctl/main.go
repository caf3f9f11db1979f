// pinctl is a small command-line client for the pinrest API: browse and
// search pins, manage boards, and toggle likes/saves from the terminal. The
// login session is persisted to a file and cleared on logout or whenever the
// server reports the token as expired.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pinrest/backend/pkg/client"
)

func main() {
	server := flag.String("server", envOr("PINREST_SERVER", "http://localhost:8080"), "API server base URL")
	sessionPath := flag.String("session", defaultSessionPath(), "path of the persisted session file")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	session, err := client.LoadSession(*sessionPath)
	if err != nil {
		log.Fatalf("Failed to load session: %v", err)
	}
	c := client.New(*server, session)

	if err := run(c, args[0], args[1:]); err != nil {
		if errors.Is(err, client.ErrSessionExpired) {
			log.Fatal("Session expired, please login again.")
		}
		log.Fatal(err)
	}
}

func run(c *client.Client, cmd string, args []string) error {
	switch cmd {
	case "register":
		if len(args) < 3 {
			return errors.New("usage: pinctl register <email> <username> <password>")
		}
		user, err := c.Register(client.RegisterRequest{Email: args[0], Username: args[1], Password: args[2]})
		if err != nil {
			return err
		}
		fmt.Printf("Registered as %s (#%d)\n", user.Username, user.ID)
		return nil

	case "login":
		if len(args) < 2 {
			return errors.New("usage: pinctl login <email> <password>")
		}
		user, err := c.Login(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Logged in as %s (#%d)\n", user.Username, user.ID)
		return nil

	case "logout":
		if err := c.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil

	case "me":
		profile, err := c.Me()
		if err != nil {
			return err
		}
		return printJSON(profile)

	case "pins":
		page, limit := pageArgs(args)
		result, err := c.Pins(page, limit)
		if err != nil {
			return err
		}
		for _, pin := range result.Data {
			fmt.Printf("#%-5d %-40s by %-20s %d likes\n", pin.ID, pin.Title, ownerName(pin.User), pin.LikesCount)
		}
		fmt.Printf("page %d/%d (%d pins)\n", result.Meta.Page, result.Meta.TotalPages, result.Meta.Total)
		return nil

	case "search":
		if len(args) < 1 {
			return errors.New("usage: pinctl search <query> [page [limit]]")
		}
		page, limit := pageArgs(args[1:])
		result, err := c.SearchPins(args[0], page, limit)
		if err != nil {
			return err
		}
		for _, pin := range result.Data {
			fmt.Printf("#%-5d %-40s by %s\n", pin.ID, pin.Title, ownerName(pin.User))
		}
		fmt.Printf("%d results for %q\n", result.Meta.Total, result.Meta.Query)
		return nil

	case "pin":
		id, err := idArg(args, "usage: pinctl pin <id>")
		if err != nil {
			return err
		}
		pin, err := c.Pin(id)
		if err != nil {
			return err
		}
		return printJSON(pin)

	case "create-pin":
		if len(args) < 2 {
			return errors.New("usage: pinctl create-pin <title> <image-url> [board-id]")
		}
		req := client.CreatePinRequest{Title: args[0], ImageURL: args[1]}
		if len(args) > 2 {
			boardID, err := parseID(args[2])
			if err != nil {
				return err
			}
			req.BoardID = &boardID
		}
		pin, err := c.CreatePin(req)
		if err != nil {
			return err
		}
		fmt.Printf("Created pin #%d\n", pin.ID)
		return nil

	case "delete-pin":
		id, err := idArg(args, "usage: pinctl delete-pin <id>")
		if err != nil {
			return err
		}
		if err := c.DeletePin(id); err != nil {
			return err
		}
		fmt.Println("Pin deleted.")
		return nil

	case "like":
		id, err := idArg(args, "usage: pinctl like <pin-id>")
		if err != nil {
			return err
		}
		result, err := c.ToggleLike(id)
		if err != nil {
			return err
		}
		if result.Liked {
			fmt.Printf("Liked (%d likes)\n", result.LikesCount)
		} else {
			fmt.Printf("Unliked (%d likes)\n", result.LikesCount)
		}
		return nil

	case "save":
		if len(args) < 2 {
			return errors.New("usage: pinctl save <pin-id> <board-id>")
		}
		pinID, err := parseID(args[0])
		if err != nil {
			return err
		}
		boardID, err := parseID(args[1])
		if err != nil {
			return err
		}
		result, err := c.SavePin(pinID, boardID)
		if err != nil {
			return err
		}
		if result.Saved {
			fmt.Println("Pin saved to board.")
		} else {
			fmt.Println("Pin removed from board.")
		}
		return nil

	case "boards":
		boards, err := c.Boards()
		if err != nil {
			return err
		}
		for _, board := range boards {
			visibility := "public"
			if board.IsPrivate {
				visibility = "private"
			}
			fmt.Printf("#%-5d %-40s %-8s %d pins\n", board.ID, board.Title, visibility, board.PinsCount)
		}
		return nil

	case "board":
		id, err := idArg(args, "usage: pinctl board <id>")
		if err != nil {
			return err
		}
		board, err := c.Board(id)
		if err != nil {
			return err
		}
		return printJSON(board)

	case "create-board":
		if len(args) < 1 {
			return errors.New("usage: pinctl create-board <title> [--private]")
		}
		req := client.CreateBoardRequest{Title: args[0]}
		if len(args) > 1 && args[1] == "--private" {
			req.IsPrivate = true
		}
		board, err := c.CreateBoard(req)
		if err != nil {
			return err
		}
		fmt.Printf("Created board #%d\n", board.ID)
		return nil

	case "delete-board":
		id, err := idArg(args, "usage: pinctl delete-board <id>")
		if err != nil {
			return err
		}
		if err := c.DeleteBoard(id); err != nil {
			return err
		}
		fmt.Println("Board deleted.")
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: pinctl [-server URL] [-session FILE] <command> [args]

commands:
  register <email> <username> <password>
  login <email> <password>
  logout
  me
  pins [page [limit]]
  search <query> [page [limit]]
  pin <id>
  create-pin <title> <image-url> [board-id]
  delete-pin <id>
  like <pin-id>
  save <pin-id> <board-id>
  boards
  board <id>
  create-board <title> [--private]
  delete-board <id>`)
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pinrest-session.json"
	}
	return filepath.Join(home, ".pinrest", "session.json")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}

func idArg(args []string, usage string) (uint, error) {
	if len(args) < 1 {
		return 0, errors.New(usage)
	}
	return parseID(args[0])
}

func ownerName(user *client.UserSummary) string {
	if user == nil {
		return "unknown"
	}
	return user.Username
}

func pageArgs(args []string) (page, limit int) {
	if len(args) > 0 {
		page, _ = strconv.Atoi(args[0])
	}
	if len(args) > 1 {
		limit, _ = strconv.Atoi(args[1])
	}
	return page, limit
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
