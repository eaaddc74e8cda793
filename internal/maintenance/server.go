package maintenance

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/wingkey/internal/logging"
)

// Protocol commands.
const (
	cmdIdentify         = "IDENTIFY"
	cmdRebootBootloader = "REBOOT_BOOTLOADER"
	cmdRebootNormal     = "REBOOT_NORMAL"
)

// Rebooter performs the platform reboot actions. Implementations are
// free to interpret them (a host runner typically restarts itself and
// lets a flasher or supervisor take over).
type Rebooter interface {
	RebootBootloader() error
	RebootNormal() error
}

// NopRebooter accepts reboot commands without acting on them.
type NopRebooter struct{}

// RebootBootloader implements Rebooter.
func (NopRebooter) RebootBootloader() error { return nil }

// RebootNormal implements Rebooter.
func (NopRebooter) RebootNormal() error { return nil }

// Server answers the line-oriented maintenance protocol: IDENTIFY for
// flasher device discovery, REBOOT_BOOTLOADER and REBOOT_NORMAL for
// firmware maintenance. Unknown commands produce an error echo and
// nothing else; no command ever touches scan state directly — reboot
// paths go through the release-all request hook.
type Server struct {
	name       string
	version    string
	session    string
	reboot     Rebooter
	releaseAll func()
	log        *logging.Logger
}

// Config holds server construction parameters.
type Config struct {
	// Name and Version identify this device in IDENTIFY responses.
	Name    string
	Version string

	// Reboot handles reboot commands. Nil uses NopRebooter.
	Reboot Rebooter

	// ReleaseAll is invoked before any reboot so no key stays held
	// across it. Nil disables the hook.
	ReleaseAll func()

	// Logger receives diagnostics. Nil disables logging.
	Logger *logging.Logger
}

// NewServer creates a server with a fresh per-boot session id.
func NewServer(cfg Config) *Server {
	if cfg.Reboot == nil {
		cfg.Reboot = NopRebooter{}
	}
	if cfg.ReleaseAll == nil {
		cfg.ReleaseAll = func() {}
	}
	log := cfg.Logger
	if log == nil {
		log = logging.NullLogger
	}
	return &Server{
		name:       cfg.Name,
		version:    cfg.Version,
		session:    uuid.NewString(),
		reboot:     cfg.Reboot,
		releaseAll: cfg.ReleaseAll,
		log:        log.WithComponent("maintenance"),
	}
}

// Session returns the per-boot session id reported by IDENTIFY.
func (s *Server) Session() string { return s.session }

// Serve reads commands line by line from r until EOF or error,
// writing responses to w. Blank lines are skipped. Returns nil on
// EOF. Cancel by closing r.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		cmd := strings.TrimSpace(scanner.Text())
		if cmd == "" {
			continue
		}
		if err := s.Handle(cmd, w); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading command channel: %w", err)
	}
	return nil
}

// Handle processes a single trimmed command line.
func (s *Server) Handle(cmd string, w io.Writer) error {
	switch cmd {
	case cmdIdentify:
		_, err := fmt.Fprintf(w, "[IDENT] %s v%s %s\n", s.name, s.version, s.session)
		return err

	case cmdRebootBootloader:
		if _, err := fmt.Fprintf(w, "[REBOOT] %s v%s entering bootloader...\n", s.name, s.version); err != nil {
			return err
		}
		s.releaseAll()
		if err := s.reboot.RebootBootloader(); err != nil {
			s.log.Error("bootloader reboot: %v", err)
		}
		return nil

	case cmdRebootNormal:
		if _, err := fmt.Fprintf(w, "[REBOOT] %s v%s normal reboot requested...\n", s.name, s.version); err != nil {
			return err
		}
		s.releaseAll()
		if err := s.reboot.RebootNormal(); err != nil {
			s.log.Error("normal reboot: %v", err)
		}
		return nil

	default:
		s.log.Warn("unknown command: %q", cmd)
		_, err := fmt.Fprintf(w, "[REBOOT] Unknown command: %s\n", cmd)
		return err
	}
}
