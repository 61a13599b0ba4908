package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netlist"
	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/yosys"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: netlist-info <design.json> [module_name]")
		fmt.Println("\nExamples:")
		fmt.Println("  netlist-info design.json           # List all modules")
		fmt.Println("  netlist-info design.json top       # Show module details")
		os.Exit(1)
	}

	filename := os.Args[1]

	doc, err := yosys.ParseFile(filename)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	decls, declErr := doc.Decls()
	design, buildErr := netlist.Build(decls)
	if err := errors.Join(declErr, buildErr); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if len(os.Args) >= 3 {
		showModuleDetails(design, os.Args[2])
		return
	}

	listAllModules(design)
}

func listAllModules(design *netlist.Design) {
	fmt.Printf("Design: %d modules\n\n", len(design.Modules))

	for _, m := range design.Modules {
		marker := ""
		if m == design.Top {
			marker = " (top)"
		}
		fmt.Printf("%s%s: %d ports, %d nodes, %d paths\n",
			m.Name, marker, len(m.Ports), len(m.Nodes), len(m.Paths))
	}
}

func showModuleDetails(design *netlist.Design, name string) {
	m := design.Module(name)
	if m == nil {
		fmt.Printf("Module '%s' not found\n", name)
		os.Exit(1)
	}

	fmt.Printf("Module: %s\n\n", m.Name)

	fmt.Printf("Boundary ports (%d):\n", len(m.Ports))
	for _, p := range m.Ports {
		extra := ""
		if p.Direction == netlist.Const {
			extra = fmt.Sprintf(" = %s", p.ConstValueString(16))
		}
		fmt.Printf("  %-20s %-6s %2d bits%s\n", p.Name, p.Direction, p.Width(), extra)
	}

	fmt.Printf("\nNodes (%d):\n", len(m.Nodes))
	for _, n := range m.Nodes {
		tag := ""
		if n.IsSynthetic() {
			tag = " (synthetic)"
		}
		fmt.Printf("  %-20s %s%s, %d ports\n", n.Name, n.Type, tag, len(n.Ports))
	}

	fmt.Printf("\nPaths (%d):\n", len(m.Paths))
	for _, p := range m.Paths {
		driver := "-"
		if p.Source != nil {
			driver = p.Source.Name
			if p.Source.Node != nil {
				driver = p.Source.Node.Name + "." + driver
			}
		}
		fmt.Printf("  %-28s %2d bits  %s -> %d consumers\n",
			p.Name, p.Width(), driver, len(p.Destinations))
	}
}
