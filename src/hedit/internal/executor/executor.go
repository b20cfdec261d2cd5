package executor

import (
	"bytes"
	"io"
	"os/exec"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides a module to inject using fx.
var Module = fx.Options(
	fx.Supply(
		fx.Annotate(NewLauncher(
			WithStartFunc(func(cmd *exec.Cmd) error { return cmd.Start() }),
		), fx.As(new(Launcher))),
	),
)

// Launcher wraps the launch of long-lived "os/exec".Cmd subprocesses to allow
// adding logs to each launch and makes it easier to test.
type Launcher interface {
	// Launch logs and starts the Cmd, returning a handle with its standard
	// stream pipes. Stderr is captured internally for failure reporting.
	Launch(cmd *exec.Cmd) (Process, error)
}

// Process is a handle to a running subprocess and its standard streams.
type Process interface {
	Stdin() io.WriteCloser
	Stdout() io.ReadCloser
	// StderrContents returns everything the subprocess has written to stderr so far.
	StderrContents() string
	Pid() int
	// Wait blocks until the subprocess exits and releases its resources.
	Wait() error
	// Kill force-terminates the subprocess. Safe to call more than once.
	Kill() error
}

// launcherImp implements Launcher.
type launcherImp struct {
	Logger *zap.SugaredLogger
	// StartFunc may be nil to use launcherImp in tests.
	StartFunc func(e *exec.Cmd) error
}

// Option defines options to customize launcherImp's behavior.
type Option func(*launcherImp)

// WithLogger overrides the default noop logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(launcher *launcherImp) {
		launcher.Logger = logger
	}
}

// WithStartFunc provides customized start behavior for launcherImp.
func WithStartFunc(startFunc func(e *exec.Cmd) error) Option {
	return func(launcher *launcherImp) {
		launcher.StartFunc = startFunc
	}
}

// NewLauncher creates a new launcherImp with the options specified.
func NewLauncher(opts ...Option) Launcher {
	launcher := &launcherImp{
		Logger:    zap.NewNop().Sugar(),
		StartFunc: func(cmd *exec.Cmd) error { return cmd.Start() },
	}
	for _, opt := range opts {
		opt(launcher)
	}
	return launcher
}

// Launch logs the Path/Args, wires the standard stream pipes and starts the Cmd.
func (l *launcherImp) Launch(cmd *exec.Cmd) (Process, error) {
	l.Logger.Infow("Launch",
		"Path", cmd.Path,
		"Dir", cmd.Dir,
		"Args", cmd.Args[1:], // First arg is always the command itself
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		stdin.Close()
		return nil, err
	}

	p := &process{cmd: cmd, stdin: stdin, stdout: stdout}
	cmd.Stderr = &p.stderr

	if err := l.StartFunc(cmd); err != nil {
		stdin.Close()
		return nil, err
	}

	return p, nil
}

type process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr lockedBuffer
}

func (p *process) Stdin() io.WriteCloser { return p.stdin }

func (p *process) Stdout() io.ReadCloser { return p.stdout }

func (p *process) StderrContents() string { return p.stderr.String() }

func (p *process) Pid() int {
	if p.cmd.Process == nil {
		return -1
	}
	return p.cmd.Process.Pid
}

func (p *process) Wait() error { return p.cmd.Wait() }

func (p *process) Kill() error {
	if p.cmd.Process == nil {
		return nil
	}
	if p.cmd.ProcessState != nil {
		return nil
	}
	return p.cmd.Process.Kill()
}

// lockedBuffer guards stderr writes from the subprocess copier.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
