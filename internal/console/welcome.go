package console

import "fmt"

// Welcome prints the rules of the colony and waits for enter.
func (p *Prompter) Welcome() error {
	fmt.Fprintln(p.out, "Welcome to the game of Life, a simulation of the lifecycle of a bacteria colony.")
	fmt.Fprintln(p.out, "Cells live and die by the following rules:")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "\tA cell with 1 or fewer neighbors dies of loneliness")
	fmt.Fprintln(p.out, "\tLocations with 2 neighbors remain stable")
	fmt.Fprintln(p.out, "\tLocations with 3 neighbors will spontaneously create life")
	fmt.Fprintln(p.out, "\tLocations with 4 or more neighbors die of overcrowding")
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "In the animation, new cells are dark and fade to gray as they age.")
	fmt.Fprintln(p.out)
	_, err := p.Line("Hit [enter] to continue....   ")
	return err
}
