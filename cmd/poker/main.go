package main

import (
	"flag"
	"os"
	"strings"

	"quicksandpoker/internal/config"
	"quicksandpoker/internal/rng"
	"quicksandpoker/internal/util"
	"quicksandpoker/pkg/poker/action"
	"quicksandpoker/pkg/poker/ai"
	"quicksandpoker/pkg/poker/texasholdem"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

// Version is the build version
var Version = "v0.0.0-dev"

var configFile = flag.String("config", "", "path to the configuration file")

func main() {
	flag.Parse()

	if *configFile != "" {
		os.Setenv("QSP_CONFIG_FILE", *configFile)
	}

	setupLogger()
	cfg := config.Instance()

	printBanner()
	pterm.Info.Printfln("QuickSand Poker %s", Version)

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("Player").Show()
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Player"
	}
	pterm.Println()

	game, err := newGame(cfg, name)
	if err != nil {
		logrus.WithError(err).Fatal("could not seat the table")
	}

	runSession(game, name)
}

func newGame(cfg config.Config, humanName string) (*texasholdem.Game, error) {
	players := make([]*texasholdem.Player, 0, cfg.Opponents+1)
	players = append(players, texasholdem.NewPlayer(humanName, humanSource()))

	used := map[string]bool{humanName: true}
	for len(players) < cfg.Opponents+1 {
		name := util.GetRandomName()
		if used[name] {
			continue
		}

		used[name] = true
		players = append(players, texasholdem.NewAutomatedPlayer(name, ai.New(rng.Crypto{})))
	}

	opts := texasholdem.Options{
		StartingChips: cfg.StartingChips,
		SmallBlind:    cfg.SmallBlind,
		BigBlind:      cfg.BigBlind,
		EquityTrials:  cfg.Equity.Trials,
		EquityWorkers: cfg.Equity.Workers,
	}

	return texasholdem.NewGame(logrus.StandardLogger(), players, opts, rng.Crypto{})
}

// humanSource prompts on the terminal for the human seat's decisions.
// Commands the parser rejects are re-prompted here; commands the engine
// rejects come back as a fresh Decide call.
func humanSource() texasholdem.DecisionSource {
	return texasholdem.DecisionFunc(func(turn *texasholdem.TurnState) (action.Command, error) {
		renderTurn(turn)

		for {
			input, _ := pterm.DefaultInteractiveTextInput.
				WithDefaultText("Your action").
				Show()

			cmd, err := action.ParseCommand(input)
			if err != nil {
				pterm.Error.Println(err)
				continue
			}

			return cmd, nil
		}
	})
}

func runSession(game *texasholdem.Game, humanName string) {
	game.Observer = func(state *texasholdem.GameState) {
		renderTable(state, humanName)
	}

	for {
		if err := game.StartRound(); err != nil {
			logrus.WithError(err).Fatal("could not start the round")
		}

		settlement, err := game.PlayRound()
		if err != nil {
			logrus.WithError(err).Fatal("round failed")
		}

		renderSettlement(settlement)

		removed, err := game.RemoveBrokePlayers()
		if err != nil {
			logrus.WithError(err).Fatal("could not clean up the table")
		}

		for _, p := range removed {
			pterm.Info.Printfln("%s left the table broke", p.Name)
		}

		if !seated(game, humanName) {
			pterm.Println()
			pterm.Info.Println("You are out of chips. Thanks for playing!")
			break
		}

		if len(game.Players()) < 2 {
			pterm.Println()
			pterm.Success.Println("You cleaned out the table!")
			break
		}

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play another round?").
			WithDefaultValue(true).
			Show()
		if !again {
			break
		}

		pterm.Println()
	}

	renderStandings(game)
}

func seated(game *texasholdem.Game, name string) bool {
	for _, p := range game.Players() {
		if p.Name == name {
			return true
		}
	}

	return false
}

func setupLogger() {
	// keep the structured log below the table UI unless asked for
	logrus.SetLevel(logrus.WarnLevel)

	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
