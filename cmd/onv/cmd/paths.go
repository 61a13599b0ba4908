package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netref"
)

var (
	pathsModule string
	pathsNet    string
	pathsHidden bool
)

var pathsCmd = &cobra.Command{
	Use:   "paths <design.json>",
	Short: "List reconstructed paths",
	Long: `List the reconstructed wires of a design: name, width, driver and
consumer count per path.

The --net flag takes a selector like "data", "data[3]" or "data[7:2]"
and restricts the listing to matching paths, printing the selected bits.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
	pathsCmd.Flags().StringVar(&pathsModule, "module", "", "restrict to one module")
	pathsCmd.Flags().StringVar(&pathsNet, "net", "", "net reference selector (name[msb:lsb])")
	pathsCmd.Flags().BoolVar(&pathsHidden, "hidden", false, "include hidden (auto-named) paths")
}

func runPaths(cmd *cobra.Command, args []string) error {
	design, err := loadDesign(args[0])
	if err != nil {
		return err
	}

	var ref *netref.Ref
	if pathsNet != "" {
		ref, err = netref.Parse(pathsNet)
		if err != nil {
			return err
		}
	}

	for _, m := range design.Modules {
		if pathsModule != "" && m.Name != pathsModule {
			continue
		}

		shown := 0
		fmt.Printf("Module %s:\n", m.Name)
		for _, p := range m.Paths {
			if p.Hidden && !pathsHidden && ref == nil {
				continue
			}
			if ref != nil && !pathMatchesRef(p, ref) {
				continue
			}
			printPath(p, ref)
			shown++
		}
		if shown == 0 {
			fmt.Println("  (no matching paths)")
		}
	}

	return nil
}

func pathMatchesRef(p *netlist.Path, ref *netref.Ref) bool {
	if ref.Matches(p.Name) {
		return true
	}
	for _, alt := range p.AlternativeNames {
		if ref.Matches(alt) {
			return true
		}
	}
	return false
}

func printPath(p *netlist.Path, ref *netref.Ref) {
	driver := "-"
	if p.Source != nil {
		driver = p.Source.Name
		if p.Source.Node != nil {
			driver = p.Source.Node.Name + "." + driver
		}
	}

	fmt.Printf("  %-28s %3d bits  driver=%-20s consumers=%d\n",
		p.Name, p.Width(), driver, len(p.Destinations))

	if ref != nil {
		bits, err := ref.Slice(p.Bits)
		if err != nil {
			fmt.Printf("    %v\n", err)
			return
		}
		fmt.Printf("    %s -> %s\n", ref, bits)
	}
}
