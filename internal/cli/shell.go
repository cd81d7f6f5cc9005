package cli

import (
	"bufio"
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/internal/output"
	"github.com/johnquangdev/meeting-sim/internal/view"
)

// ErrQuit ends the shell loop
var ErrQuit = stdErrors.New("quit")

const shellHelp = `Commands:
  list                              show all meetings
  new <title> [| a, b, ...]         create a meeting and open it
  open <id>                         open a meeting by id or id prefix
  back                              return to the meeting list
  show                              redraw the current screen
  tab details|transcription|summary switch tabs
  record                            start recording
  play                              play the recording
  transcribe                        generate the transcription
  summarize                         generate the summary and action items
  toggle <n|id>                     toggle an action item
  help                              show this help
  quit                              leave the shell`

// Shell is a line-oriented driver for the list and detail views
type Shell struct {
	list      *view.ListView
	formatter *output.Formatter
	logger    *zap.Logger
}

// NewShell creates a shell whose alerts go to formatter
func NewShell(backend view.Backend, formatter *output.Formatter, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		list:      view.NewListView(backend, view.AlertFunc(formatter.Alert), logger),
		formatter: formatter,
		logger:    logger,
	}
}

// List exposes the underlying list view
func (s *Shell) List() *view.ListView {
	return s.list
}

// Run reads commands from in until EOF or quit
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if err := s.list.Load(ctx); err != nil {
		s.formatter.Error(err.Error())
	}
	s.render()

	scanner := bufio.NewScanner(in)
	for {
		s.formatter.Prompt(s.promptLabel())
		if !scanner.Scan() {
			return scanner.Err()
		}
		err := s.Exec(ctx, scanner.Text())
		if stdErrors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			s.formatter.Error(err.Error())
		}
	}
}

// Exec runs a single command line
func (s *Shell) Exec(ctx context.Context, line string) error {
	cmd, arg := splitCommand(line)
	dv := s.list.Selected()

	switch cmd {
	case "":
		return nil
	case "help", "?":
		s.formatter.Screen(shellHelp)
		return nil
	case "quit", "exit":
		return ErrQuit
	case "list":
		if err := s.list.Back(ctx); err != nil {
			return err
		}
	case "new":
		title, participants, _ := strings.Cut(arg, "|")
		if _, err := s.list.Create(ctx, strings.TrimSpace(title), participants); err != nil {
			return nil // already alerted
		}
	case "open":
		if arg == "" {
			return fmt.Errorf("usage: open <id>")
		}
		if _, err := s.list.Select(ctx, arg); err != nil {
			return err
		}
	case "back":
		if err := s.list.Back(ctx); err != nil {
			return err
		}
	case "show":
	default:
		if dv == nil {
			return fmt.Errorf("%q needs an open meeting; try open <id>", cmd)
		}
		if err := s.execDetail(ctx, dv, cmd, arg); err != nil {
			return err
		}
	}

	s.render()
	return nil
}

func (s *Shell) execDetail(ctx context.Context, dv *view.DetailView, cmd, arg string) error {
	switch cmd {
	case "tab":
		tab, err := view.ParseTab(arg)
		if err != nil {
			return err
		}
		return dv.SelectTab(tab)
	case "record":
		s.formatter.Recording()
		return quiet(dv.StartRecording(ctx))
	case "play":
		dv.PlayRecording()
		return nil
	case "transcribe":
		s.formatter.Transcribing()
		return quiet(dv.GenerateTranscription(ctx))
	case "summarize":
		s.formatter.Summarizing()
		return quiet(dv.GenerateSummary(ctx))
	case "toggle":
		itemID, err := resolveItem(dv, arg)
		if err != nil {
			return err
		}
		_, err = dv.ToggleActionItem(ctx, itemID)
		return quiet(err)
	}
	return fmt.Errorf("unknown command %q; type help", cmd)
}

func (s *Shell) render() {
	if dv := s.list.Selected(); dv != nil {
		s.formatter.Screen(view.RenderDetail(dv.State()))
		return
	}
	s.formatter.Screen(view.RenderList(s.list.Meetings(), s.list.IsLoading()))
}

func (s *Shell) promptLabel() string {
	if dv := s.list.Selected(); dv != nil {
		st := dv.State()
		return fmt.Sprintf("meeting #%s", st.Meeting.ShortID())
	}
	return "meetings"
}

// quiet drops errors the view already surfaced through its alerter
func quiet(err error) error {
	switch {
	case err == nil,
		stdErrors.Is(err, view.ErrBusy),
		stdErrors.Is(err, view.ErrTabDisabled),
		stdErrors.Is(err, view.ErrUnknownActionItem):
		return err
	}
	return nil
}

// resolveItem accepts a 1-based index into the action items or an item id
func resolveItem(dv *view.DetailView, arg string) (string, error) {
	items := dv.State().Meeting.ActionItems
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(items) {
			return "", fmt.Errorf("no action item %d", n)
		}
		return items[n-1].ID, nil
	}
	if arg == "" {
		return "", fmt.Errorf("usage: toggle <n|id>")
	}
	return arg, nil
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, arg, _ := strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func NewShellCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive meeting shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(deps.Out)
			shell := NewShell(deps.App.Server, formatter, deps.Logger)
			formatter.Info("Type help for a list of commands")
			return shell.Run(cmd.Context(), deps.In)
		},
	}
}
