package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cetkaik/internal/cetkaik"
	"cetkaik/internal/cetkaik/absolute"
	"cetkaik/internal/cetkaik/perspective"
	"cetkaik/internal/cetkaik/relative"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	tamStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

func parsePerspective(s string) (perspective.Perspective, error) {
	switch strings.ToLower(s) {
	case "ia-down", "down":
		return perspective.IaIsDownAndPointsUpward, nil
	case "ia-up", "up":
		return perspective.IaIsUpAndPointsDownward, nil
	}
	return 0, fmt.Errorf("unknown perspective %q (want ia-down or ia-up)", s)
}

func colorize(b relative.Board) string {
	var sb strings.Builder
	for r := 0; r < relative.Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < relative.Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			pc := b.Squares[r][c]
			tok := pc.String()
			switch {
			case pc.IsTam2():
				tok = tamStyle.Render(tok + "　　")
			case pc.HasColor(cetkaik.Kok1):
				tok = redStyle.Render(tok)
			case pc.HasColor(cetkaik.Huok2):
				tok = blackStyle.Render(tok)
			default:
				tok += "　　"
			}
			sb.WriteString(tok)
		}
	}
	return sb.String()
}

func main() {
	persp := flag.String("perspective", "ia-down", "ia-down (IA points upward) or ia-up")
	coord := flag.String("coord", "", "absolute label to inspect, e.g. ZAU")
	color := flag.Bool("color", true, "colorize pieces")
	flag.Parse()

	p, err := parsePerspective(*persp)
	if err != nil {
		log.Fatal(err)
	}

	field := perspective.ToRelativeField(absolute.InitialField(), p)
	fmt.Println("Perspective:", p, "Upward side:", p.Upward())
	if *color {
		fmt.Println(colorize(field.Board))
	} else {
		fmt.Println(field.Board)
	}
	fmt.Println()
	fmt.Println(absolute.InitialBoard().Grid())
	fmt.Printf("Hash: %016x\n", field.Hash())

	if *coord == "" {
		return
	}
	c, err := absolute.ParseCoord(*coord)
	if err != nil {
		log.Fatalf("bad -coord: %v", err)
	}
	rc := perspective.ToRelativeCoord(c, p)
	pc := field.Board.At(rc)
	log.Printf("%s -> %s water=%v piece=%s", c, rc, absolute.IsWater(c), pc)
}
