// Package cli implements the interactive helpdesk menu.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"sysdesk/internal/models"
)

// Helpdesk is the set of checks the menu drives
type Helpdesk interface {
	DefaultHost() string
	CheckDiskSpace(ctx context.Context) string
	CheckNetworkConnectivity(ctx context.Context, host string) models.ProbeResult
	GetRunningProcesses(ctx context.Context) string
	CheckSystemResources(ctx context.Context) (*models.ResourceUsage, string)
	ClearTempFiles() string
	GenerateSystemReport(ctx context.Context) string
	SaveReport(report string) (string, error)
}

const menuText = `
=== IT HELPDESK AUTOMATION TOOL ===
1. Check Disk Space
2. Test Network Connectivity
3. View Running Processes
4. Check System Resources
5. Clear Temporary Files
6. Generate System Report
7. Exit`

// Menu reads choices from in and writes results to out until the user
// exits or input ends
type Menu struct {
	helpdesk Helpdesk
	in       *bufio.Scanner
	out      io.Writer
}

func NewMenu(helpdesk Helpdesk, in io.Reader, out io.Writer) *Menu {
	return &Menu{helpdesk: helpdesk, in: bufio.NewScanner(in), out: out}
}

// Run loops over the menu. It only returns when the user picks exit, the
// input is exhausted or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) {
	for ctx.Err() == nil {
		m.println(menuText)

		choice, ok := m.prompt("\nSelect an option (1-7): ")
		if !ok {
			m.println("\nGoodbye!")
			return
		}

		if !m.dispatch(ctx, choice) {
			return
		}
	}
}

// dispatch handles one choice and reports whether the loop continues
func (m *Menu) dispatch(ctx context.Context, choice string) bool {
	switch choice {
	case "1":
		m.println("\nChecking disk space...")
		m.println(m.helpdesk.CheckDiskSpace(ctx))

	case "2":
		host, _ := m.prompt(fmt.Sprintf("Enter host to ping (default: %s): ", m.helpdesk.DefaultHost()))
		if host == "" {
			host = m.helpdesk.DefaultHost()
		}
		m.printf("\nTesting connectivity to %s...\n", host)
		if m.helpdesk.CheckNetworkConnectivity(ctx, host).Success {
			m.println("✓ Network connectivity is working")
		} else {
			m.println("✗ Network connectivity failed")
		}

	case "3":
		m.println("\nRetrieving running processes...")
		m.println(m.helpdesk.GetRunningProcesses(ctx))

	case "4":
		m.println("\nChecking system resources...")
		usage, msg := m.helpdesk.CheckSystemResources(ctx)
		if usage == nil {
			m.println(msg)
			break
		}
		for _, f := range usage.Fields() {
			m.printf("%s: %s\n", f.Label(), f.Value)
		}

	case "5":
		m.println("\nClearing temporary files...")
		m.println(m.helpdesk.ClearTempFiles())

	case "6":
		m.println("\nGenerating system report...")
		report := m.helpdesk.GenerateSystemReport(ctx)
		m.println(report)

		path, err := m.helpdesk.SaveReport(report)
		if err != nil {
			m.printf("\nCould not save report: %v\n", err)
			break
		}
		m.printf("\nReport saved to %s\n", path)

	case "7":
		m.println("Goodbye!")
		return false

	default:
		m.println("Invalid option. Please try again.")
	}
	return true
}

// prompt writes label and reads one trimmed line; ok is false at end of input
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}
