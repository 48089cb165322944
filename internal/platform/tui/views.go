package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/games/coinflip"
	"github.com/vovakirdan/pocket-arcade/internal/games/colorguess"
	"github.com/vovakirdan/pocket-arcade/internal/games/hangman"
	"github.com/vovakirdan/pocket-arcade/internal/games/memory"
	"github.com/vovakirdan/pocket-arcade/internal/games/reaction"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	boxStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(4).
			Align(lipgloss.Center)
)

// renderBoard draws the game-specific part of a snapshot.
func renderBoard(snap core.Snapshot) string {
	switch round := snap.Round.(type) {
	case coinflip.Round:
		return renderCoinFlip(snap, round)
	case colorguess.Round:
		return renderColorGuess(snap, round)
	case hangman.Round:
		return renderHangman(snap, round)
	case memory.Round:
		return renderMemory(round)
	case reaction.Round:
		return renderReaction(round)
	}

	if snap.GameID == reaction.GameID {
		return renderReactionWaiting(snap)
	}
	if snap.GameID == coinflip.GameID {
		return "Call it: heads or tails?"
	}
	return dimStyle.Render("Press enter to start.")
}

func renderCoinFlip(snap core.Snapshot, r coinflip.Round) string {
	if snap.State == string(coinflip.StateFlipping) {
		return fmt.Sprintf("You called %s.\n\nThe coin is in the air...", r.Prediction)
	}
	if r.Outcome == "" {
		return "Call it: heads or tails?"
	}
	verdict := badStyle.Render("Wrong!")
	if r.Correct {
		verdict = goodStyle.Render("Correct!")
	}
	return fmt.Sprintf("You called %s. It landed %s.\n\n%s", r.Prediction, r.Outcome, verdict)
}

func swatch(c colorguess.RGB, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

func renderColorGuess(snap core.Snapshot, r colorguess.Round) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Which colour is %s?\n\n", r.Target)

	options := make([]string, len(r.Options))
	for i, opt := range r.Options {
		label := fmt.Sprintf(" %d ", i+1)
		switch {
		case i == r.Answer:
			label = goodStyle.Render(label)
		case i == r.Selected:
			label = badStyle.Render(label)
		}
		options[i] = lipgloss.JoinVertical(lipgloss.Center, swatch(opt, 6), swatch(opt, 6), label)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, spaced(options)...))
	b.WriteString("\n\n")

	switch {
	case snap.State == string(colorguess.StateGameOver):
		fmt.Fprintf(&b, "%s Final score: %d", badStyle.Render("Game over."), snap.Stats[colorguess.StatScore])
	case r.Selected < 0:
	case r.Correct:
		b.WriteString(goodStyle.Render(fmt.Sprintf("Correct! +%d", r.Awarded)))
	default:
		b.WriteString(badStyle.Render("Wrong!"))
	}
	return b.String()
}

func renderHangman(snap core.Snapshot, r hangman.Round) string {
	var b strings.Builder
	b.WriteString(strings.Join(strings.Split(r.Masked, ""), " "))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Guessed: %s\n", strings.Join(r.Guessed, " "))
	fmt.Fprintf(&b, "Misses:  %s%s\n",
		badStyle.Render(strings.Repeat("x", r.Wrong)),
		dimStyle.Render(strings.Repeat(".", r.MaxWrong-r.Wrong)))

	switch snap.State {
	case string(hangman.StateWon):
		fmt.Fprintf(&b, "\n%s", goodStyle.Render("Solved!"))
	case string(hangman.StateLost):
		fmt.Fprintf(&b, "\n%s The word was %q.", badStyle.Render("Hanged."), r.Word)
	}
	return b.String()
}

func renderMemory(r memory.Round) string {
	const perRow = 4

	var rows []string
	var row []string
	for i, c := range r.Cards {
		face := CardLabel(i)
		style := cardStyle
		switch {
		case c.Matched:
			face = c.Symbol
			style = style.BorderForeground(lipgloss.Color("10"))
		case c.FaceUp:
			face = c.Symbol
			style = style.BorderForeground(lipgloss.Color("229"))
		}
		row = append(row, style.Render(face))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if len(r.Cards) > 0 && len(r.Matched) == len(r.Cards)/2 {
		return grid + "\n\n" + goodStyle.Render("All pairs found!")
	}
	return grid + "\n\nMatched: " + strings.Join(r.Matched, " ")
}

func renderReaction(r reaction.Round) string {
	if r.Early {
		return badStyle.Render("Too early!") + "\n\nPress space to try again."
	}
	return fmt.Sprintf("%s\n\nPress space to go again.", goodStyle.Render(fmt.Sprintf("%d ms", r.LatencyMs)))
}

func renderReactionWaiting(snap core.Snapshot) string {
	panel := lipgloss.NewStyle().Width(30).Height(5).Align(lipgloss.Center, lipgloss.Center)
	switch snap.State {
	case string(reaction.StateReady):
		return panel.Background(lipgloss.Color("1")).Render("wait for green...")
	case string(reaction.StateGo):
		return panel.Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")).Render("TAP!")
	}
	return "Press space, then tap again as soon as the panel turns green."
}

// renderStats draws counters, history and the best result.
func renderStats(snap core.Snapshot) string {
	names := make([]string, 0, len(snap.Stats))
	for name := range snap.Stats {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%-13s %d", strings.ReplaceAll(name, "_", " "), snap.Stats[name]))
	}

	best := "-"
	if snap.Best != nil {
		best = fmt.Sprint(*snap.Best)
	}
	lines = append(lines, "", fmt.Sprintf("%-13s %s", "best", best))

	if len(snap.History) > 0 {
		hist := make([]string, len(snap.History))
		for i, v := range snap.History {
			hist[i] = fmt.Sprint(v)
		}
		lines = append(lines, fmt.Sprintf("%-13s %s", "history", strings.Join(hist, " ")))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func spaced(items []string) []string {
	out := make([]string, 0, 2*len(items))
	for i, s := range items {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, s)
	}
	return out
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
