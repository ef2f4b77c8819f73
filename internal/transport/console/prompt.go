package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

var ErrInputClosed = errors.New("input closed")

// Prompter reads one line of input per prompt and writes everything the
// player sees.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *Prompter) Println(a ...interface{}) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ReadColumn asks player for a column until the answer names one of the
// available columns. available holds 0-based columns; the player types
// 1-based numbers. The chosen column is returned 0-based.
func (p *Prompter) ReadColumn(player domain.PlayerID, available []int) (int, error) {
	options := make([]string, len(available))
	for i, col := range available {
		options[i] = strconv.Itoa(col + 1)
	}
	prompt := fmt.Sprintf("It's %s's turn. Please select a column. Your options are [%s]: ",
		player.Mark(), strings.Join(options, ", "))

	for {
		p.Printf("%s", prompt)
		line, err := p.readLine()
		if err != nil {
			return -1, err
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			continue
		}

		if containsColumn(available, choice-1) {
			return choice - 1, nil
		}

		p.Printf("Trying to place an %s in column %d.\n", player.Mark(), choice)
		p.Printf("Make sure to pick a column between 1 and %d that is not full.\n", domain.Columns)
	}
}

func containsColumn(available []int, col int) bool {
	for _, c := range available {
		if c == col {
			return true
		}
	}
	return false
}

// AskReplay returns true for y/yes and false for n/no, in any case.
func (p *Prompter) AskReplay() (bool, error) {
	for {
		p.Printf("Play again? Y or N: ")
		line, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.Println("Please enter a valid answer.")
	}
}
