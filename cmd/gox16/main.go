// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/gox16/gox16/asm"
	"github.com/gox16/gox16/vm"
)

func main() {
	var compile string
	var image string
	var save string
	var input string
	var output string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&image, "b", "", ".bin image to load instead of assembling")
	flag.StringVar(&save, "s", "", "Save assembled image to file, do not execute")
	flag.StringVar(&input, "i", "-", "INP input")
	flag.StringVar(&output, "o", "-", "OUT output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	machine := &vm.Machine{Verbose: verbose}

	// Assemble a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		assembler := &asm.Assembler{Verbose: verbose}
		prog, err := assembler.Assemble(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if len(save) != 0 {
			ouf, err := os.Create(save)
			if err != nil {
				log.Fatalf("%v: %v", save, err)
			}
			defer ouf.Close()

			if _, err = prog.WriteTo(ouf); err != nil {
				log.Fatalf("%v: %v", save, err)
			}
			return
		}

		machine.Load(prog.Words)
	}

	// Load a previously saved image.
	if len(image) != 0 {
		inf, err := os.Open(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		defer inf.Close()

		if err = machine.LoadBin(inf); err != nil {
			log.Fatalf("%v: %v", image, err)
		}
	}

	if input == "-" {
		machine.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		machine.Input = inf
	}

	if output == "-" {
		machine.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		machine.Output = ouf
	}

	if err := machine.Run(); err != nil {
		log.Fatal(err)
	}
}
