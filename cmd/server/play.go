package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/celala99/cela-geo-quest/internal/entities"
	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/encounter"
	"github.com/celala99/cela-geo-quest/internal/orchestrators/progress"
)

// counterPollInterval is how often play checks whether the enemy struck back
const counterPollInterval = 20 * time.Millisecond

var playerID string

var playCmd = &cobra.Command{
	Use:   "play [dataset] [region]",
	Short: "Battle a region's creature in the terminal",
	Long: `Play one encounter against the real battle engine. Captures are kept in
the configured Dex backend under the --player name.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		ds, err := loadDataset(ctx, cfg, args[0])
		if err != nil {
			return fmt.Errorf("failed to load dataset: %w", err)
		}

		svc, err := buildServices(cfg, ds)
		if err != nil {
			return err
		}
		defer svc.Close()

		p := &player{
			svc:      svc,
			playerID: playerID,
			delay:    cfg.CounterDelay,
			in:       bufio.NewScanner(cmd.InOrStdin()),
			out:      cmd.OutOrStdout(),
		}
		return p.play(ctx, args[1])
	},
}

func init() {
	playCmd.Flags().StringVar(&playerID, "player", "local", "Player ID used for the Dex")
}

// player runs one terminal encounter
type player struct {
	svc      *services
	playerID string
	delay    time.Duration
	in       *bufio.Scanner
	out      io.Writer
}

func (p *player) play(ctx context.Context, regionID string) error {
	started, err := p.svc.Encounter.StartEncounter(ctx, &encounter.StartEncounterInput{
		PlayerID: p.playerID,
		RegionID: regionID,
	})
	if err != nil {
		return err
	}

	state := started.State
	p.printf("%s\n", state.LastMessage)

	for !state.IsFinished() {
		p.printStatus(state)

		if !p.in.Scan() {
			return p.abandon(ctx)
		}
		line := strings.TrimSpace(p.in.Text())
		if line == "q" {
			return p.abandon(ctx)
		}

		choice := 0
		if !state.FallbackMode() {
			choice, err = strconv.Atoi(line)
			if err != nil {
				p.printf("Enter a number between 0 and %d, or q to run away.\n", entities.ChoiceCount-1)
				continue
			}
		}

		answered, err := p.svc.Encounter.SubmitAnswer(ctx, &encounter.SubmitAnswerInput{
			PlayerID: p.playerID,
			Choice:   choice,
		})
		if errors.IsInvalidArgument(err) {
			p.printf("%s\n", errors.GetMessage(err))
			continue
		}
		if err != nil {
			return err
		}

		state = answered.State
		p.printf("%s\n", state.LastMessage)

		if state.Answered {
			state, err = p.awaitCounter(ctx)
			if err != nil {
				return err
			}
			p.printf("%s\n", state.LastMessage)
		}
	}

	if state.Finished == entities.OutcomeWin {
		return p.printDex(ctx)
	}
	return nil
}

// awaitCounter polls until the scheduled enemy counter has been applied
func (p *player) awaitCounter(ctx context.Context) (*entities.BattleState, error) {
	deadline := time.Now().Add(p.delay + 5*time.Second)
	ticker := time.NewTicker(counterPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		out, err := p.svc.Encounter.GetEncounter(ctx, &encounter.GetEncounterInput{PlayerID: p.playerID})
		if err != nil {
			return nil, err
		}
		if !out.State.Answered {
			return out.State, nil
		}
		if time.Now().After(deadline) {
			return nil, errors.Internal("enemy counter never arrived")
		}
	}
}

func (p *player) abandon(ctx context.Context) error {
	_, err := p.svc.Encounter.AbandonEncounter(ctx, &encounter.AbandonEncounterInput{PlayerID: p.playerID})
	if err != nil && !errors.IsNotFound(err) {
		return err
	}
	p.printf("You ran away.\n")
	return nil
}

func (p *player) printStatus(s *entities.BattleState) {
	p.printf("\n%s HP %d/%d | You HP %d/%d\n", s.Enemy.Name, s.EnemyHP, s.EnemyMaxHP, s.PlayerHP, s.PlayerMaxHP)

	quiz, ok := s.CurrentQuiz()
	if !ok {
		p.printf("Press enter to attack (q to run away): ")
		return
	}

	p.printf("%s\n", quiz.Question)
	for i, c := range quiz.Choices {
		p.printf("  [%d] %s\n", i, c)
	}
	p.printf("Your answer (q to run away): ")
}

func (p *player) printDex(ctx context.Context) error {
	out, err := p.svc.Progress.GetDex(ctx, &progress.GetDexInput{PlayerID: p.playerID})
	if err != nil {
		return err
	}

	p.printf("\nDex (%d/%d regions):\n", len(out.Entries), len(p.svc.Dataset.Monsters))
	for _, e := range out.Entries {
		p.printf("  %-12s captured %s\n", e.RegionID, humanize.Time(e.CapturedAt))
	}
	return nil
}

func (p *player) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
