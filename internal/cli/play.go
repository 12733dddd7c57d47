package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/monadviz/pkg/anim"
	"github.com/matzehuels/monadviz/pkg/canvas"
	"github.com/matzehuels/monadviz/pkg/errors"
)

// Terminal playback grid. 2:1 keeps circles roughly round in cell space.
const (
	playCols = 100
	playRows = 50
)

// playCommand creates the play command for live terminal playback.
func (c *CLI) playCommand() *cobra.Command {
	var configPath string
	flagCfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the animation in the terminal",
		Long: `Play the five-stage monad animation directly in the terminal.

Frames advance at a fixed interval (default 50ms). Playback stops on the
final frame; the animation is a one-way emergence and does not loop.
Press q or ctrl+c to quit early.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath, flagCfg)
			if err != nil {
				return err
			}
			return runPlay(cmd.Context(), cfg)
		},
	}

	addConfigFlags(cmd, &flagCfg)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	return cmd
}

// runPlay builds the animator and hands it to a bubbletea program driven
// by a fixed-interval tick.
func runPlay(ctx context.Context, cfg Config) error {
	model, err := computeLayout(ctx, cfg)
	if err != nil {
		return err
	}
	animator, err := anim.New(model, cfg.FramesPerStage)
	if err != nil {
		return err
	}

	pm := playModel{
		animator: animator,
		canvas:   canvas.NewTerm(playCols, playRows),
		interval: time.Duration(cfg.IntervalMS) * time.Millisecond,
		ctx:      ctx,
	}

	p := tea.NewProgram(pm, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderingFailure, err, "playback")
	}

	// A renderer failure quits the program; surface it as the command error.
	if m, ok := final.(playModel); ok && m.err != nil {
		return m.err
	}
	return nil
}

// tickMsg advances the animation by one frame.
type tickMsg time.Time

// playModel is the bubbletea model for animation playback.
type playModel struct {
	animator *anim.Animator
	canvas   *canvas.Term
	interval time.Duration
	ctx      context.Context
	err      error
	finished bool
}

func (m playModel) Init() tea.Cmd {
	return m.tick()
}

func (m playModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.finished {
			return m, nil
		}
		if err := m.animator.RenderFrame(m.ctx, m.canvas); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if !m.animator.Advance() {
			m.finished = true
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder
	b.WriteString(m.canvas.Render())

	f := m.animator.CurrentFrame()
	status := fmt.Sprintf("frame %d/%d  stage %s  %3.0f%%",
		f.Index+1, m.animator.Clock().TotalFrames(), f.Stage, f.Progress*100)
	if m.finished {
		status = fmt.Sprintf("frame %d/%d  done", f.Index+1, m.animator.Clock().TotalFrames())
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(status + "  (q to quit)"))
	b.WriteString("\n")
	return b.String()
}
