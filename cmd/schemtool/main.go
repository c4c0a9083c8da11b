// Command schemtool inspects, converts and archives schematic files.
package main

import (
	"fmt"
	"log"
	"os"

	schematic "github.com/Denkerkammer/libschematic"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "schemtool",
		Usage: "inspect, convert and archive schematic files",
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print dimensions and contents of a schematic",
				ArgsUsage: "<file>",
				Action:    runInfo,
			},
			{
				Name:      "convert",
				Usage:     "re-encode a legacy schematic as a pocket one, remapping obsolete block ids",
				ArgsUsage: "<in> <out>",
				Action:    runConvert,
			},
			{
				Name:  "store",
				Usage: "manage a schematic library directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Value: "schematics",
						Usage: "library directory",
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:      "put",
						Usage:     "store a schematic file under a name",
						ArgsUsage: "<name> <file>",
						Action:    runStorePut,
					},
					{
						Name:      "get",
						Usage:     "write a stored schematic to a file",
						ArgsUsage: "<name> <file>",
						Action:    runStoreGet,
					},
					{
						Name:   "list",
						Usage:  "list stored schematics",
						Action: runStoreList,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runInfo(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("need a schematic file to inspect", 1)
	}
	s, err := schematic.Load(c.Args().Get(0))
	if err != nil {
		return err
	}

	variant := "pocket"
	if s.Variant == schematic.Legacy {
		variant = "legacy"
	}
	nonAir := 0
	for b := range s.Each() {
		if b.ID != 0 {
			nonAir++
		}
	}

	fmt.Printf("size:      %d×%d×%d\n", s.Width, s.Height, s.Length)
	fmt.Printf("materials: %s (%s variant)\n", s.Materials, variant)
	fmt.Printf("blocks:    %d non-air of %d cells\n", nonAir, s.Width*s.Height*s.Length)
	fmt.Printf("entities:  carried=%t\n", s.Entities != nil || s.TileEntities != nil)
	return nil
}

func runConvert(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("need an input and an output file", 1)
	}
	src, err := schematic.Load(c.Args().Get(0))
	if err != nil {
		return err
	}

	// Iterating the source applies the legacy remap table, so simply
	// repopulating a pocket document upgrades the ids.
	dst := schematic.New(schematic.Pocket)
	blocks := make([]schematic.Block, 0, src.Width*src.Height*src.Length)
	for b := range src.Each() {
		blocks = append(blocks, b)
	}
	if src.Width == 0 || src.Height == 0 || src.Length == 0 {
		dst.SetBlocks(nil)
	} else {
		vol := schematic.Volume{Max: cube.Pos{src.Width - 1, src.Height - 1, src.Length - 1}}
		dst.SetBlocksInVolume(vol, blocks)
	}

	if err := dst.Save(c.Args().Get(1)); err != nil {
		return err
	}
	fmt.Printf("converted %d cells\n", len(blocks))
	return nil
}

func runStorePut(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("need a name and a schematic file", 1)
	}
	s, err := schematic.Load(c.Args().Get(1))
	if err != nil {
		return err
	}

	lib, err := schematic.OpenLibrary(c.String("dir"))
	if err != nil {
		return err
	}
	defer lib.Close()
	return lib.Put(c.Args().Get(0), s)
}

func runStoreGet(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("need a name and an output file", 1)
	}
	lib, err := schematic.OpenLibrary(c.String("dir"))
	if err != nil {
		return err
	}
	defer lib.Close()

	s, err := lib.Get(c.Args().Get(0))
	if err != nil {
		return err
	}
	return s.Save(c.Args().Get(1))
}

func runStoreList(c *cli.Context) error {
	lib, err := schematic.OpenLibrary(c.String("dir"))
	if err != nil {
		return err
	}
	defer lib.Close()

	names, err := lib.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
