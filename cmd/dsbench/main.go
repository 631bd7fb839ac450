// Command dsbench drives timed workloads against the dskit containers.
package main

func main() {
	execute()
}
