// Command silenttrial runs The Silent Trial, a terminal riddle game.
package main

import "github.com/silenttrial-dev/silenttrial/internal/cli"

func main() {
	cli.Execute()
}
