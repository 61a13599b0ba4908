package netlist

// stitchSignals creates one path per driver port and attaches every
// consumer whose bits match a path exactly. Display names come from the
// declared net aliases; drivers without an alias get a hidden
// "<port>_sig" name. Consumers that match no path stay unattached and
// are dealt with by pruning and validation.
func stitchSignals(m *Module, translations translationTable) {
	var drivers, consumers []*Port

	for _, p := range m.Ports {
		if p.Direction == Input || p.Direction == Const {
			drivers = append(drivers, p)
		} else {
			consumers = append(consumers, p)
		}
	}
	for _, n := range m.Nodes {
		for _, p := range n.Ports {
			if p.Direction == Output {
				drivers = append(drivers, p)
			} else {
				consumers = append(consumers, p)
			}
		}
	}

	for _, driver := range drivers {
		attachDriver(m, driver, translations)
	}
	for _, consumer := range consumers {
		attachConsumer(m, consumer)
	}
}

func attachDriver(m *Module, driver *Port, translations translationTable) {
	name := driver.Name + "_sig"
	hidden := true
	var alternatives []string

	var netname *Netname
	if driver.Direction == Const {
		// A CONST port carries freshly allocated tokens; the alias, if
		// any, was declared on the host port's pre-materialization bits.
		if original := translations.originalFor(driver.Bits); original != nil {
			netname = m.NetnameByBits(original)
		}
	} else {
		netname = m.NetnameByBits(driver.Bits)
	}

	if netname != nil {
		name = netname.Name
		hidden = netname.Hidden
		alternatives = append(alternatives, netname.Alternatives...)
	}

	path := &Path{
		Name:             name,
		Bits:             driver.Bits.Clone(),
		Hidden:           hidden,
		Source:           driver,
		AlternativeNames: alternatives,
	}
	driver.Path = path
	m.AddPath(path)
}

func attachConsumer(m *Module, consumer *Port) {
	path := m.PathByBits(consumer.Bits)
	if path == nil {
		return
	}
	path.Destinations = append(path.Destinations, consumer)
	consumer.Path = path
}

// pruneDanglingPaths removes every path without a usable connection.
// Paths whose bits hold a no-connect marker are kept.
func pruneDanglingPaths(m *Module) {
	var doomed []*Path
	for _, p := range m.Paths {
		if !p.HasConnection() {
			doomed = append(doomed, p)
		}
	}
	for _, p := range doomed {
		if p.Source != nil {
			p.Source.Path = nil
		}
		for _, dest := range p.Destinations {
			dest.Path = nil
		}
		m.RemovePath(p)
	}
}
