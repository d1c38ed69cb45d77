package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeTerminal struct {
	bytes.Buffer
	cols, rows int
}

func (f *fakeTerminal) Size() (int, int, error) { return f.cols, f.rows, nil }

type result struct {
	stdout, stderr string
	screen         string
	err            error
}

func execute(ctx context.Context, profile termenv.Profile, args ...string) result {
	term := &fakeTerminal{cols: 80, rows: 1}
	a := &app{term: term, profile: profile}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(ctx)
	return result{
		stdout: stdout.String(),
		stderr: stderr.String(),
		screen: term.String(),
		err:    err,
	}
}

func run(args ...string) result {
	return execute(context.Background(), termenv.Ascii, args...)
}

var _ = Describe("love", func() {
	Describe("informational flags", func() {
		It("prints the banner on --help", func() {
			res := run("--help")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.stdout).To(ContainSubstring("A lovely terminal heart animation"))
			Expect(res.stdout).To(ContainSubstring("--petite"))
			Expect(res.screen).To(BeEmpty())
		})

		It("prints the version on --version", func() {
			res := run("--version")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.stdout).To(ContainSubstring("1.2.0"))
			Expect(res.screen).To(BeEmpty())
		})
	})

	Describe("argument validation", func() {
		It("rejects unknown flags", func() {
			res := run("--invalid")
			Expect(res.err).To(HaveOccurred())
			Expect(res.screen).To(BeEmpty())
		})

		It("rejects positional arguments", func() {
			res := run("extra")
			Expect(res.err).To(HaveOccurred())
		})

		It("rejects a message over 100 characters before touching the terminal", func() {
			res := run("--message", strings.Repeat("a", 101))
			Expect(res.err).To(MatchError(ContainSubstring("Message too long")))
			Expect(res.stderr).To(ContainSubstring("Message too long"))
			Expect(res.stderr).To(ContainSubstring("max 100 characters"))
			Expect(res.screen).To(BeEmpty())
		})

		It("rejects very long messages", func() {
			res := run("-m", strings.Repeat("a", 1000))
			Expect(res.err).To(HaveOccurred())
			Expect(res.screen).To(BeEmpty())
		})

		It("accepts a message of exactly 100 characters", func() {
			res := run("-m", strings.Repeat("a", 100))
			Expect(res.err).NotTo(HaveOccurred())
		})
	})

	Describe("rendering", func() {
		It("draws the heart and restores the terminal", func() {
			res := run()
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.screen).To(HavePrefix("\x1b[?1049h\x1b[?25l\x1b7"))
			Expect(res.screen).To(HaveSuffix("\x1b8\x1b[?25h\x1b[?1049l"))
			Expect(res.screen).To(ContainSubstring("vvvvvv"))
		})

		It("stops after the heart scrolls off a one row terminal", func() {
			res := run("--petite")
			Expect(res.err).NotTo(HaveOccurred())
			// rows 0 through rows+size, one line each
			Expect(strings.Count(res.screen, "\n")).To(Equal(12))
		})

		It("strips escape sequences from the message", func() {
			res := run("--message", "Hello\x1b[31mWorld")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.screen).To(ContainSubstring(" Hello[31mWorld "))
			Expect(res.screen).NotTo(ContainSubstring("\x1b[31m"))
		})

		It("strips null bytes from the message", func() {
			res := run("-m", "Hello\x00World")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.screen).To(ContainSubstring(" HelloWorld "))
		})

		It("combines options", func() {
			res := execute(context.Background(), termenv.ANSI, "-m", "Love", "--petite", "--color", "magenta")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.screen).To(ContainSubstring("\x1b[95m"))
			Expect(res.screen).To(ContainSubstring(" Love "))
		})

		DescribeTable("falls back to white for unknown colors",
			func(color string) {
				res := execute(context.Background(), termenv.ANSI, "--color", color)
				Expect(res.err).NotTo(HaveOccurred())
				Expect(res.screen).To(ContainSubstring("\x1b[97m"))
			},
			Entry("upper case", "RED"),
			Entry("empty", ""),
			Entry("unknown", "purple"),
		)

		It("stops without drawing when already interrupted", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			res := execute(ctx, termenv.Ascii)
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.screen).To(Equal("\x1b[?1049h\x1b[?25l\x1b7\x1b[1;1H\x1b8\x1b[?25h\x1b[?1049l"))
		})
	})

	Describe("config file", func() {
		var path string

		BeforeEach(func() {
			path = filepath.Join(GinkgoT().TempDir(), "love.yaml")
			Expect(os.WriteFile(path, []byte("message: Be mine\ncolor: red\n"), 0644)).To(Succeed())
		})

		It("uses values from the file", func() {
			res := execute(context.Background(), termenv.ANSI, "--config", path)
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.screen).To(ContainSubstring(" Be mine "))
			Expect(res.screen).To(ContainSubstring("\x1b[91m"))
		})

		It("lets explicit flags win", func() {
			res := execute(context.Background(), termenv.ANSI, "--config", path, "--color", "green", "-m", "Hi")
			Expect(res.err).NotTo(HaveOccurred())
			Expect(res.screen).To(ContainSubstring("\x1b[92m"))
			Expect(res.screen).NotTo(ContainSubstring("\x1b[91m"))
			Expect(res.screen).To(ContainSubstring(" Hi "))
			Expect(res.screen).NotTo(ContainSubstring("Be mine"))
		})

		It("validates the message from the file", func() {
			Expect(os.WriteFile(path, []byte("message: "+strings.Repeat("x", 101)+"\n"), 0644)).To(Succeed())
			res := execute(context.Background(), termenv.Ascii, "--config", path)
			Expect(res.err).To(MatchError(ContainSubstring("Message too long")))
			Expect(res.screen).To(BeEmpty())
		})

		It("fails on a missing file", func() {
			res := run("--config", filepath.Join(filepath.Dir(path), "missing.yaml"))
			Expect(res.err).To(MatchError(ContainSubstring("load config")))
		})
	})
})
