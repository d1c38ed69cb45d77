package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/san-kum/love/internal/anim"
	"github.com/san-kum/love/internal/config"
	"github.com/san-kum/love/internal/heart"
	"github.com/spf13/cobra"
)

// app holds the flag values and the terminal the animation draws on.
type app struct {
	configFile string
	message    string
	petite     bool
	color      string

	term    anim.Terminal
	profile termenv.Profile
	delay   time.Duration
}

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Padding(0, 1)

func banner() string {
	art := strings.Join([]string{
		"  vvvvvv  vvvvvvv",
		"vvvvvvvvvvvvvvvvvv",
		"vvvvvvvvvvvvvvvvvvv",
		"vvvvvvvvvvvvvvvvvv",
		"  vvvvvvvvvvvvvv",
		"    vvvvvvvvvv",
		"      vvvvvv",
		"        vv",
	}, "\n")
	text := strings.Join([]string{
		"A lovely terminal heart animation.",
		"",
		"Watch the heart float up...",
		"Add your message inside...",
		"And share the love!",
		"",
		"",
		"Type 'love --help' for more details",
	}, "\n")
	return bannerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, art, "    ", text))
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "love",
		Short:   "A lovely terminal heart animation",
		Long:    banner(),
		Version: version,
		Args:    cobra.NoArgs,
		RunE:    a.run,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&a.message, "message", "m", "", "message shown inside the heart (max 100 characters)")
	flags.BoolVar(&a.petite, "petite", config.DefaultPetite, "draw a smaller heart")
	flags.StringVar(&a.color, "color", config.DefaultColor,
		fmt.Sprintf("heart color (%s)", strings.Join(heart.ColorNames(), ", ")))
	flags.StringVar(&a.configFile, "config", "", "config file path (yaml)")

	return rootCmd
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg, err = cfg.Validate()
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	r := heart.NewRenderer(heart.SizeFor(cfg.Petite), cfg.Message, heart.ParseColor(cfg.Color), a.profile)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return anim.New(a.term, r, anim.WithDelay(a.delay)).Run(ctx)
}

// loadConfig layers explicitly set flags over the config file, or over the
// defaults when no file is given.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("message") {
		cfg.Message = a.message
	}
	if flags.Changed("petite") {
		cfg.Petite = a.petite
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	return cfg, nil
}
