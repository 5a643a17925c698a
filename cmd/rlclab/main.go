package main

import "github.com/edp1096/rlc-lab/cmd/rlclab/cmd"

func main() {
	cmd.Execute()
}
