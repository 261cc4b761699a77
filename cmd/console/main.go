package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/draughtsdev/checkers-backend/internal/checkers"
	"github.com/draughtsdev/checkers-backend/internal/entity"
	"github.com/draughtsdev/checkers-backend/internal/service"
)

// Interactive terminal game: two humans sharing a keyboard, or one
// human against the random bot. Board state never leaves the process.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	scanner := bufio.NewScanner(os.Stdin)

	playAgainstComputer := chooseOpponent(scanner)

	game := entity.NewGame("console", entity.PrivateType)
	game.Status = entity.StatusOngoing
	engine := checkers.NewEngine(logger, game)

	var bot service.BotService
	if playAgainstComputer {
		game.Type = entity.WithBotType
		botPlayer := entity.NewBotPlayer("console", game.ID)
		botPlayer.Mark = entity.MarkO
		game.Players = append(game.Players, botPlayer)
		bot = service.NewBotService(logger, nil)
	}

	fmt.Println("Welcome to Checkers!")
	if playAgainstComputer {
		fmt.Println("You (Player X) are playing against the computer (Player O).")
	} else {
		fmt.Println("You are playing against another player.")
	}

	printBoard(engine.Board())

	winner := runGame(scanner, engine, game, bot)
	fmt.Printf("Game over! Player %s wins!\n", winner)
}

func runGame(scanner *bufio.Scanner, engine *checkers.Engine, game *entity.Game, bot service.BotService) entity.Mark {
	for !engine.IsGameEnded() {
		fmt.Printf("Player %s's turn\n", engine.CurrentTurn())
		fmt.Println("Enter your move (e.g., '3a-4b'):")

		if !scanner.Scan() {
			return engine.CurrentTurn().Opponent()
		}

		move, err := checkers.ParseMove(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Println("Invalid input. Please use the format: '3a-4b'.")
			continue
		}

		if !engine.ApplyMove(move.FromRow, move.FromCol, move.ToRow, move.ToCol) {
			fmt.Println("Invalid move. Try again.")
			continue
		}
		fmt.Println("Move successful!")

		if bot != nil && !runBotTurns(engine, game, bot) {
			// Bot is on turn but cannot produce a move: stalemate by
			// the computer, the human side takes the game.
			printBoard(engine.Board())
			return entity.MarkX
		}

		printBoard(engine.Board())
	}

	return engine.Winner()
}

// runBotTurns - lets the computer move until the turn comes back to the
// human, following capture chains. Returns false if the bot got stuck
// while still on turn.
func runBotTurns(engine *checkers.Engine, game *entity.Game, bot service.BotService) bool {
	for !engine.IsGameEnded() && engine.CurrentTurn() == entity.MarkO {
		move, err := bot.MakeTurn(game)
		if err != nil {
			fmt.Println("No more forward moves. Computer's turn is over.")
			return false
		}
		fmt.Println("Computer's move:", move)
	}

	return true
}

func chooseOpponent(scanner *bufio.Scanner) bool {
	for {
		fmt.Println("Enter 'P' if you want to play against another player; enter 'C' to play against computer.")
		if !scanner.Scan() {
			return false
		}

		switch strings.ToUpper(strings.TrimSpace(scanner.Text())) {
		case "P":
			return false
		case "C":
			return true
		default:
			fmt.Println("Invalid selection. Please enter 'P' or 'C'.")
		}
	}
}

// printBoard - 8x8 grid with coordinate legends, X/O/_ per cell.
func printBoard(board entity.Board) {
	fmt.Print("  ")
	for col := 'a'; col <= 'h'; col++ {
		fmt.Printf(" %c", col)
	}
	fmt.Println()

	for row := 0; row < entity.BoardSize; row++ {
		fmt.Printf("%d ", row+1)
		for col := 0; col < entity.BoardSize; col++ {
			symbol := "_"
			if !board[row][col].IsEmpty() {
				symbol = board[row][col].String()
			}
			fmt.Printf("|%s", symbol)
		}
		fmt.Println("|")
	}
}
