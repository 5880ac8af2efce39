package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/sanchess-go/internal/chess"
	"github.com/lgbarn/sanchess-go/internal/config"
	"github.com/lgbarn/sanchess-go/internal/engine"
	"github.com/lgbarn/sanchess-go/internal/errors"
	"github.com/lgbarn/sanchess-go/internal/output"
	"github.com/lgbarn/sanchess-go/internal/parser"
)

const promotionPrompt = "Promote to (N/R/B, empty for Queen): "

// errEndOfInput ends the game when input runs out in the middle of a move.
var errEndOfInput = stderrors.New("end of input")

// host alternates between reading a line of SAN and printing the position.
type host struct {
	cfg     *config.Config
	pos     *chess.Position
	writers output.PositionWriter
	lines   *bufio.Scanner

	// msg receives prompts and rejection messages. It is the log stream in
	// JSON mode so the output stays machine readable.
	msg io.Writer
}

// run plays one game from the lines of r and returns the process exit code.
func run(r io.Reader, cfg *config.Config) int {
	pos, err := startPosition(cfg.StartFEN)
	if err != nil {
		fmt.Fprintf(logWriter(cfg), "Error: %v\n", err)
		return exitFailure
	}

	writers := output.NewWriters(cfg)
	h := &host{
		cfg:     cfg,
		pos:     pos,
		writers: writers,
		lines:   bufio.NewScanner(r),
		msg:     cfg.OutputFile,
	}
	if cfg.Export.JSONFormat {
		h.msg = logWriter(cfg)
	}

	code := h.loop()
	if err := writers.Close(); err != nil && code == exitOK {
		fmt.Fprintf(logWriter(cfg), "Error: %v\n", err)
		code = exitFailure
	}
	return code
}

// startPosition returns the initial position, or the one fen describes.
func startPosition(fen string) (*chess.Position, error) {
	if fen == "" {
		return engine.NewGame(), nil
	}
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, errors.Wrapf(err, "loading -fen %q", fen)
	}
	return pos, nil
}

func logWriter(cfg *config.Config) io.Writer {
	if cfg.LogFile == nil {
		return os.Stderr
	}
	return cfg.LogFile
}

func (h *host) loop() int {
	if err := h.show(nil, ""); err != nil {
		return h.fail(err)
	}
	if engine.Classify(h.pos).IsTerminal() {
		return exitOK
	}

	for {
		if h.cfg.Prompt {
			fmt.Fprintf(h.msg, "%s to move: ", h.pos.ToMove)
		}
		line, ok := h.readLine()
		if !ok {
			return exitOK
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit":
			return exitOK
		case "resign":
			fmt.Fprintf(h.msg, "%s resigns. %s wins.\n", h.pos.ToMove, h.pos.ToMove.Opposite())
			return exitOK
		}

		vm, san, err := h.play(line)
		switch {
		case err == nil:
		case stderrors.Is(err, errEndOfInput):
			return exitOK
		case !errors.IsRecoverable(err):
			fmt.Fprintf(logWriter(h.cfg), "fatal: %v\n", err)
			return exitIntegrity
		default:
			fmt.Fprintf(h.msg, "illegal move: %v\n", err)
			h.cfg.Logf(config.Commentary, "rejected %q: %v\n", line, err)
			continue
		}

		if err := h.show(vm, san); err != nil {
			return h.fail(err)
		}
		if engine.Classify(h.pos).IsTerminal() {
			return exitOK
		}
	}
}

// play parses, verifies and applies one move, asking for the promotion
// piece when the move needs one. It returns the move's SAN as played.
func (h *host) play(text string) (*chess.VerifiedMove, string, error) {
	move, err := parser.ParseSAN(text)
	if err != nil {
		return nil, "", err
	}

	vm, err := engine.Verify(h.pos, move, chess.NoPiece)
	if stderrors.Is(err, errors.ErrPromotionRequired) {
		hint, ok := h.askPromotion()
		if !ok {
			return nil, "", errEndOfInput
		}
		vm, err = engine.Verify(h.pos, move, hint)
	}
	if err != nil {
		return nil, "", err
	}

	san := engine.FormatSAN(h.pos, vm)
	label := moveLabel(h.pos, san)
	if err := engine.ApplyMove(h.pos, vm); err != nil {
		return nil, "", err
	}

	h.cfg.Logf(config.Commentary, "%s %s %s-%s\n", vm.Colour, strings.ToLower(vm.Piece.String()), vm.From, vm.Target)
	h.cfg.Logf(config.StatusLine, "%s\n", label)
	return vm, san, nil
}

// askPromotion reads the promotion piece. An empty reply means a Queen.
// It reports false if input ends first.
func (h *host) askPromotion() (chess.PieceKind, bool) {
	for {
		fmt.Fprint(h.msg, promotionPrompt)
		reply, ok := h.readLine()
		if !ok {
			return chess.NoPiece, false
		}
		if reply == "" {
			return chess.Queen, true
		}
		if len(reply) == 1 {
			if kind := chess.KindFromLetter(strings.ToUpper(reply)[0]); kind.IsPromotable() {
				return kind, true
			}
		}
		fmt.Fprintf(h.msg, "invalid promotion piece: %q\n", reply)
	}
}

func (h *host) readLine() (string, bool) {
	if !h.lines.Scan() {
		if err := h.lines.Err(); err != nil {
			h.cfg.Logf(config.StatusLine, "reading input: %v\n", err)
		}
		return "", false
	}
	return strings.TrimSpace(h.lines.Text()), true
}

func (h *host) show(vm *chess.VerifiedMove, san string) error {
	return h.writers.WritePosition(&output.Snapshot{
		Position: h.pos,
		Move:     vm,
		SAN:      san,
	})
}

func (h *host) fail(err error) int {
	fmt.Fprintf(logWriter(h.cfg), "Error: %v\n", err)
	return exitFailure
}

// moveLabel numbers a move the way a score sheet does: "12. Nf3" for
// White, "12... Nc6" for Black.
func moveLabel(pos *chess.Position, san string) string {
	if pos.ToMove == chess.White {
		return fmt.Sprintf("%d. %s", pos.MoveNumber, san)
	}
	return fmt.Sprintf("%d... %s", pos.MoveNumber, san)
}
