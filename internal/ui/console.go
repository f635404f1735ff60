// Package ui renders validation results for a terminal.
package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/Amr-9/GrsValidator/pkg/batch"
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
	"github.com/Amr-9/GrsValidator/pkg/generator"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// Console writes human-readable output, optionally colored.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

// c returns code when colors are enabled.
func (c *Console) c(code string) string {
	if !c.color {
		return ""
	}
	return code
}

// PrintBanner shows the program name and version
func (c *Console) PrintBanner(version string) {
	fmt.Fprintf(c.w, "%s%sGRS address validator%s %sv%s%s\n\n",
		c.c(ColorCyan), c.c(ColorBold), c.c(ColorReset), c.c(ColorDim), version, c.c(ColorReset))
}

// PrintResult shows one validation outcome
func (c *Console) PrintResult(res batch.Result) {
	if res.Valid {
		cls := res.Classification
		fmt.Fprintf(c.w, "%s✔%s %s%s%s  %s%s%s %s %s(%s)%s\n",
			c.c(ColorGreen+ColorBold), c.c(ColorReset),
			c.c(ColorBold), res.Address, c.c(ColorReset),
			c.c(ColorCyan), cls.Network, c.c(ColorReset),
			cls.Type,
			c.c(ColorDim), cls.Type.Description(), c.c(ColorReset))
		return
	}
	fmt.Fprintf(c.w, "%s✘%s %s  %s%s%s\n",
		c.c(ColorRed+ColorBold), c.c(ColorReset),
		res.Address,
		c.c(ColorDim), res.Error, c.c(ColorReset))
}

// PrintStats shows the summary of a batch run
func (c *Console) PrintStats(stats batch.Stats) {
	fmt.Fprintf(c.w, "\n%s%s%s checked %s│%s %s%s%s valid %s│%s %s%s%s invalid %s│%s %s %s│%s %s\n",
		c.c(ColorBold), FormatNumber(stats.Checked), c.c(ColorReset),
		c.c(ColorDim), c.c(ColorReset),
		c.c(ColorGreen+ColorBold), FormatNumber(stats.Valid), c.c(ColorReset),
		c.c(ColorDim), c.c(ColorReset),
		c.c(ColorRed+ColorBold), FormatNumber(stats.Invalid), c.c(ColorReset),
		c.c(ColorDim), c.c(ColorReset),
		FormatRate(stats.Rate),
		c.c(ColorDim), c.c(ColorReset),
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
}

// PrintGenerated shows a freshly derived address and its keys
func (c *Console) PrintGenerated(res *generator.Result) {
	fmt.Fprintf(c.w, "    %s📍 %s %s ADDRESS%s\n", c.c(ColorCyan+ColorBold), res.Network, res.Kind, c.c(ColorReset))
	fmt.Fprintf(c.w, "       %s%s%s%s\n\n", c.c(ColorGreen), c.c(ColorBold), res.Address, c.c(ColorReset))

	fmt.Fprintf(c.w, "    %s🔑 PRIVATE KEY (WIF)%s\n", c.c(ColorPurple+ColorBold), c.c(ColorReset))
	fmt.Fprintf(c.w, "       %s%s%s\n\n", c.c(ColorYellow), res.PrivateKey, c.c(ColorReset))

	fmt.Fprintf(c.w, "    %sPUBLIC KEY%s\n", c.c(ColorDim), c.c(ColorReset))
	fmt.Fprintf(c.w, "       %s\n\n", res.PublicKey)
	fmt.Fprintf(c.w, "    %s%s⚠  KEEP YOUR PRIVATE KEY SECRET!%s\n", c.c(ColorRed), c.c(ColorBold), c.c(ColorReset))
}

// PrintNetworks lists the network parameters
func (c *Console) PrintNetworks(params []chaincfg.Params) {
	fmt.Fprintf(c.w, "%s%-9s %6s %6s %6s  %s%s\n", c.c(ColorBold),
		"NETWORK", "P2PKH", "P2SH", "WIF", "SEGWIT HRP", c.c(ColorReset))
	for _, p := range params {
		fmt.Fprintf(c.w, "%-9s %6d %6d %6d  %s\n", p.Name,
			p.PubKeyHashAddrID, p.ScriptHashAddrID, p.PrivateKeyID, p.Bech32HRPSegwit)
	}
}

// FormatRate formats a per-second rate nicely
func FormatRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
