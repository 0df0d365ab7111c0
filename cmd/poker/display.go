package main

import (
	"fmt"
	"sort"
	"strings"

	"quicksandpoker/pkg/deck"
	"quicksandpoker/pkg/poker/texasholdem"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

func printBanner() {
	pterm.Print("\n")

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Q", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("uick", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("and", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
}

// renderTable draws the table after a state change. Only transitions the
// human should see are drawn; per-action snapshots would redraw the table
// once per opponent decision.
func renderTable(state *texasholdem.GameState, humanName string) {
	if !interesting(state, humanName) {
		return
	}

	opponents := make([]pterm.Panel, 0, len(state.Players))
	var human pterm.Panel

	for _, p := range state.Players {
		if p.Name == humanName {
			human = pterm.Panel{Data: playerBox(p, true)}
		} else {
			opponents = append(opponents, pterm.Panel{Data: playerBox(p, false)})
		}
	}

	board := pterm.Panel{Data: boardBox(state)}

	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		opponents,
		{board},
		{human},
	}).Render()
}

// interesting reports whether the snapshot is worth a redraw: only the
// ones where the human is about to act
func interesting(state *texasholdem.GameState, humanName string) bool {
	for _, p := range state.Players {
		if p.InTurn {
			return p.Name == humanName
		}
	}

	return false
}

func playerBox(p *texasholdem.PlayerState, main bool) string {
	padding := 2
	if main {
		padding = 6
	}

	box := pterm.DefaultBox.WithLeftPadding(padding).WithRightPadding(padding).WithTopPadding(1).WithBottomPadding(1)

	title := p.Name
	if p.Dealer {
		title += " (D)"
	}

	var status string
	switch {
	case p.Folded:
		status = pterm.LightRed("Folded")
	case p.InTurn:
		status = pterm.LightYellow("Thinking...")
	default:
		status = pterm.LightGreen("Active")
	}

	body := fmt.Sprintf("%s\nBet: %d\nChips: %d", status, p.Bet, p.Chips)
	if len(p.Hole) > 0 {
		body += "\n" + handString(p.Hole)
	}

	return box.WithTitle(title).WithTitleTopLeft().Sprint(body)
}

func boardBox(state *texasholdem.GameState) string {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	board := handString(state.Community)
	if len(state.Community) == 0 {
		board = "no cards yet"
	}

	body := fmt.Sprintf("%s\nPot: %d | %s", board, state.Pot, state.Street)
	return box.WithTitle(pterm.LightYellow("|BOARD|")).WithTitleTopCenter().Sprint(body)
}

// renderTurn shows the human their private view before prompting
func renderTurn(turn *texasholdem.TurnState) {
	pterm.Println()
	pterm.Info.Printfln("Your hand: %s (%s)", handString(turn.Hole), turn.HandScore.Category)

	if turn.WinProbability != nil {
		pterm.Info.Printfln("Estimated win probability: %.1f%%", *turn.WinProbability)
	}

	if turn.AmountToCall > 0 {
		pterm.Info.Printfln("Pot: %d | To call: %d", turn.Pot, turn.AmountToCall)
	} else {
		pterm.Info.Printfln("Pot: %d | Nothing to call", turn.Pot)
	}

	legal := make([]string, len(turn.LegalActions))
	for i, a := range turn.LegalActions {
		legal[i] = a.String()
	}
	pterm.Info.Printfln("Actions: %s", strings.Join(legal, ", "))
}

func renderSettlement(settlement *texasholdem.Settlement) {
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	var sb strings.Builder
	if settlement.Showdown == nil {
		sb.WriteString(pterm.Sprintfln("%s won %d uncontested", pterm.LightCyan(settlement.Winners[0]), settlement.Pot))
	} else {
		for _, hand := range settlement.Showdown {
			if hand.Winner {
				sb.WriteString(pterm.Sprintfln("%s won %d with %s (%s)",
					pterm.LightCyan(hand.Name), hand.Payout, handString(hand.Hole), hand.Score.Category))
			} else {
				sb.WriteString(pterm.Sprintfln("%s showed %s (%s)",
					hand.Name, handString(hand.Hole), hand.Score.Category))
			}
		}
	}

	pterm.Println()
	pterm.Println(box.WithTitle(pterm.LightGreen("|SHOWDOWN|")).WithTitleTopCenter().Sprint(strings.TrimRight(sb.String(), "\n")))
}

func renderStandings(game *texasholdem.Game) {
	players := append([]*texasholdem.Player(nil), game.Players()...)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Chips() > players[j].Chips()
	})

	rows := pterm.TableData{{"Player", "Chips"}}
	for _, p := range players {
		rows = append(rows, []string{p.Name, fmt.Sprintf("%d", p.Chips())})
	}

	pterm.Println()
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func handString(hand deck.Hand) string {
	cards := make([]string, len(hand))
	for i, c := range hand {
		cards[i] = c.String()
	}

	return strings.Join(cards, " ")
}
