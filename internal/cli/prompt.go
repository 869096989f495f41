package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rshade/nanolca/internal/lca"
)

// Console reads answers to prompts line by line.
// A single Console must be used for every prompt on the same reader so that
// buffered input is not lost between prompts.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsole creates a Console reading from r and writing prompts to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(r), out: w}
}

// Println writes a line of text without waiting for input.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// String prints label and returns the next line as typed. Only the line
// ending is removed; names are matched exactly, surrounding spaces included.
func (c *Console) String(label string) (string, error) {
	fmt.Fprint(c.out, label)

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSuffix(c.scanner.Text(), "\r"), nil
}

// Float prints label and parses the answer as a float64, ignoring
// surrounding space. Malformed or non-finite input is returned as
// ErrInvalidNumber; there is no retry.
func (c *Console) Float(label string) (float64, error) {
	text, err := c.String(label)
	if err != nil {
		return 0, err
	}

	text = strings.TrimSpace(text)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}
	return v, nil
}

// Selection is the nanoparticle choice made at the console.
type Selection struct {
	Name         string
	MassFraction float64
}

// PromptSelection asks for the nanoparticle name and its mass fraction.
func PromptSelection(c *Console) (Selection, error) {
	c.Println("Enter the nanoparticle properties for your nanofluid:\n")

	name, err := c.String("Enter nanoparticle name (e.g., Ag, ZnO, TiO2, SiO2, CuO, Al2O3, TiO2-SiC): ")
	if err != nil {
		return Selection{}, fmt.Errorf("nanoparticle name: %w", err)
	}

	mf, err := c.Float(fmt.Sprintf("Enter mass fraction of %s in nanofluid (0 - 1): ", name))
	if err != nil {
		return Selection{}, fmt.Errorf("mass fraction: %w", err)
	}

	return Selection{Name: name, MassFraction: mf}, nil
}

// consoleEntry implements lca.ManualEntry by prompting for every parameter.
type consoleEntry struct {
	console *Console
}

var _ lca.ManualEntry = (*consoleEntry)(nil)

// Enter prompts for the parameters of name in a fixed order: CO2, CH4,
// toxicity, two energy bounds, two water bounds, cost.
func (e *consoleEntry) Enter(name string) (lca.NanoparticleRecord, error) {
	c := e.console
	c.Println(fmt.Sprintf("Nanoparticle %s is not in the database. Please provide values manually.\n", name))

	rec := lca.NanoparticleRecord{Name: name, Emissions: lca.Emissions{}}
	var err error

	ask := func(field, label string, dst *float64) {
		if err != nil {
			return
		}
		if *dst, err = c.Float(label); err != nil {
			err = fmt.Errorf("%s: %w", field, err)
		}
	}

	var co2, ch4 float64
	ask("CO2 emissions", fmt.Sprintf("Enter CO2 emissions for %s (kg CO2/kg nanoparticle): ", name), &co2)
	ask("CH4 emissions", fmt.Sprintf("Enter CH4 emissions for %s (kg CH4/kg nanoparticle): ", name), &ch4)
	ask("toxicity", fmt.Sprintf("Enter toxicity factor for %s (CTUh/e): ", name), &rec.Toxicity)

	energyLabel := fmt.Sprintf(
		"Enter energy usage (MJ) for %s (enter 2 values for lower and upper bounds): ", name)
	ask("energy lower bound", energyLabel, &rec.EnergyUse[0])
	ask("energy upper bound", energyLabel, &rec.EnergyUse[1])

	waterLabel := fmt.Sprintf(
		"Enter water usage (m³) for %s (enter 2 values for lower and upper bounds): ", name)
	ask("water lower bound", waterLabel, &rec.WaterUse[0])
	ask("water upper bound", waterLabel, &rec.WaterUse[1])

	ask("cost", fmt.Sprintf("Enter cost of %s ($/kg): ", name), &rec.CostPerKg)

	if err != nil {
		return lca.NanoparticleRecord{}, err
	}

	rec.Emissions[lca.GasCO2] = co2
	rec.Emissions[lca.GasCH4] = ch4
	return rec, nil
}
