package main

type helpTopic struct {
	summary string
	body    string
}

var helpTopics = map[string]helpTopic{
	"workspaces": {
		summary: "How outputs, workspaces, and pulling fit together",
		body: `# Workspaces

Every workspace is shown on exactly one output. An output shows one of its
workspaces at a time; the others stay hidden until focused.

tilectl pull brings a workspace to the output you are working on. If the
workspace was on another output, the workspace you were looking at moves
there in exchange, so nothing is left without an output. Pulling a name that
does not exist yet creates the workspace on your output.

Each workspace remembers the outputs it has lived on, most recent first.
When an output returns after being unplugged, its workspaces go back to it.`,
	},
	"config": {
		summary: "Configuration file format",
		body: `# Configuration

tilectl reads ~/.config/tiler/config.toml, then the file given with
--config, whose values win when set.

The seat table selects the seat commands act on. The events table sets
where workspace events are logged. The hooks table holds an on-move script
that runs after every pull that moved a workspace, with TILER_SEAT,
TILER_WORKSPACE, and TILER_MOVED set in its environment.

Each output table declares an output by name, with optional make, model,
serial, position, size, and the workspaces it should start with.`,
	},
}
