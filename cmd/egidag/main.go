// Copyright 2017 The go-ethereum Authors
// This file is part of the egihash library.
//
// The egihash library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The egihash library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the egihash library. If not, see <http://www.gnu.org/licenses/>.

// egidag is a small command-line tool exercising the ethash package's
// byte-reader/byte-writer boundary: it builds caches and DAGs into a named
// output file, and dumps the header of an existing DAG file without loading
// the whole thing into memory. It is a demonstration, not part of the core
// package's test surface.
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/energicryptocurrency/egihash/ethash"
	"github.com/urfave/cli"
)

var app = cli.NewApp()

func init() {
	app.Name = "egidag"
	app.Usage = "generate and inspect ethash verification caches and DAGs"
	app.HideVersion = true
	app.Commands = []cli.Command{
		makecacheCommand,
		makedagCommand,
		headerCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var makecacheCommand = cli.Command{
	Action:    makecache,
	Name:      "makecache",
	Usage:     "generate a verification cache",
	ArgsUsage: "<blockNum> <outputFile>",
	Category:  "GENERATION",
	Description: `
The makecache command generates the ethash verification cache for the
epoch containing <blockNum> and writes it, alone, little-endian, to
<outputFile>. It does not write the DAG file header; it exists to let
callers inspect the cache bytes in isolation.
`,
}

var makedagCommand = cli.Command{
	Action:    makedag,
	Name:      "makedag",
	Usage:     "generate a full DAG file",
	ArgsUsage: "<blockNum> <outputFile>",
	Category:  "GENERATION",
	Description: `
The makedag command generates the cache and full dataset for the epoch
containing <blockNum> and writes them to <outputFile> using the on-disk
DAG file format (header, cache section, dataset section).
`,
}

var headerCommand = cli.Command{
	Action:    header,
	Name:      "header",
	Usage:     "print the header fields of a DAG file",
	ArgsUsage: "<dagFile>",
	Category:  "INSPECTION",
	Description: `
The header command reads just the fixed 65 byte header of a DAG file and
prints its fields, without loading the cache or dataset sections.
`,
}

func makecache(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 2 {
		return cli.NewExitError("usage: egidag makecache <block number> <output file>", 1)
	}
	block, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid block number: %v", err), 1)
	}

	cache, err := ethash.NewTester().MakeCache(block, nil)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	f, err := os.Create(args[1])
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer f.Close()
	if _, err := f.Write(cache.Bytes()); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Printf("wrote %d byte cache for epoch %d\n", cache.SizeBytes(), cache.Epoch())
	return nil
}

func makedag(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 2 {
		return cli.NewExitError("usage: egidag makedag <block number> <output file>", 1)
	}
	block, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid block number: %v", err), 1)
	}

	handle, err := ethash.NewTester().MakeDAG(block, nil)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	f, err := os.Create(args[1])
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer f.Close()
	if err := ethash.Save(handle, f, nil); err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	fmt.Printf("wrote DAG for epoch %d (%d bytes)\n", handle.Epoch(), handle.SizeBytes())
	return nil
}

func header(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 1 {
		return cli.NewExitError("usage: egidag header <dag file>", 1)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	defer f.Close()

	buf := make([]byte, 65)
	if _, err := f.Read(buf); err != nil {
		return cli.NewExitError(fmt.Sprintf("reading header: %v", err), 1)
	}

	fmt.Printf("magic:         %q\n", buf[0:12])
	fmt.Printf("major version: %d\n", binary.LittleEndian.Uint32(buf[12:16]))
	fmt.Printf("revision:      %d\n", binary.LittleEndian.Uint32(buf[16:20]))
	fmt.Printf("minor version: %d\n", binary.LittleEndian.Uint32(buf[20:24]))
	fmt.Printf("epoch:         %d\n", binary.LittleEndian.Uint64(buf[24:32]))
	fmt.Printf("cache:         [%d, %d)\n", binary.LittleEndian.Uint64(buf[32:40]), binary.LittleEndian.Uint64(buf[40:48]))
	fmt.Printf("dag:           [%d, %d)\n", binary.LittleEndian.Uint64(buf[48:56]), binary.LittleEndian.Uint64(buf[56:64]))
	return nil
}
