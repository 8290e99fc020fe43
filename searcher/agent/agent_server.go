package agent

import (
	"fmt"
	"time"

	"chomp/communication"
	"chomp/game"
	"chomp/meta"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = time.Minute
	defaultBodyLimit    = 1024 * 1024 // 1MB
)

// NewServer exposes an agent over HTTP:
//
//	GET  /health
//	POST /findmove  communication.FindMoveRequest -> communication.FindMoveResponse
//
// Boards with more than maxCells cells are refused since the solver has no
// way to give up on a position. A non-positive maxCells uses meta.DEFAULT_MAX_CELLS.
func NewServer(a Agent, maxCells int) *fiber.App {
	if maxCells <= 0 {
		maxCells = meta.DEFAULT_MAX_CELLS
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           defaultReadTimeout,
		WriteTimeout:          defaultWriteTimeout,
		BodyLimit:             defaultBodyLimit,
		DisableStartupMessage: true,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Post("/findmove", findMoveHandler(a, maxCells))

	return app
}

// StartAgentServer blocks serving the agent on addr.
func StartAgentServer(addr string, a Agent, maxCells int) error {
	log.Info().Msgf("starting agent server on %s (max %d cells) ...", addr, maxCells)
	return NewServer(a, maxCells).Listen(addr)
}

func findMoveHandler(a Agent, maxCells int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payload communication.FindMoveRequest
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}

		board, err := game.NewBoardFromCells(payload.Cells)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if board.Len() == 0 {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "board is empty, the game is over",
			})
		}
		if board.Len() > maxCells {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": fmt.Sprintf("board has %d cells, at most %d are searched", board.Len(), maxCells),
			})
		}

		state := game.NewGameState(board, [2]string{payload.Player, "opponent"})
		move, metric, err := a.FindMove(state)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		log.Debug().Str("game", payload.GameID).Msgf("found move %v on %d cells (forced win: %t)", move, board.Len(), metric.ForcedWin)

		return c.Status(fiber.StatusOK).JSON(communication.FindMoveResponse{
			Move:      move,
			ForcedWin: metric.ForcedWin,
			Nodes:     metric.Nodes,
			Duration:  metric.Duration,
		})
	}
}
