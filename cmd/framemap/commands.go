package main

import (
	"errors"
	"fmt"
	"os"

	"framemap/internal/frame"
	"framemap/internal/inspect"
	"framemap/internal/snapshot"
)

func runScan(env *cmdEnv, args []string) error {
	dir, err := env.parse(args)
	if err != nil {
		return err
	}

	r, err := env.reader(dir)
	if err != nil {
		return err
	}

	var total, decoded, faults int

	for f, ferr := range r.Frames() {
		if ferr != nil && !frameFault(ferr) {
			return ferr
		}

		var status string

		switch {
		case f.Common != nil:
			status = "decoded"
			decoded++
		case env.table.Has(f.Triplet.TypeID):
			status = "decode failed"
		default:
			status = "unknown type"
		}

		if ferr != nil {
			status = "fault: " + ferr.Error()
			faults++
		}

		fmt.Fprintf(env.stdout, "%d\t%d\t%s\t%d\t%d\t%s\n",
			f.Index, f.Seq, frame.FormatTimestamp(f.Triplet.Timestamp), f.Triplet.TypeID, len(f.Data), status)

		total++
	}

	fmt.Fprintf(env.stdout, "\n%d frames, %d decoded, %d faults\n", total, decoded, faults)

	return nil
}

func runDump(env *cmdEnv, args []string) error {
	var (
		index int
		seq   int
		raw   bool
	)

	env.flags.IntVar(&index, "index", -1, "only frames of this file index")
	env.flags.IntVar(&seq, "seq", -1, "only the frame with this sequence number")
	env.flags.BoolVar(&raw, "spew", false, "print a deep Go value dump instead of the display tree")

	dir, err := env.parse(args)
	if err != nil {
		return err
	}

	r, err := env.reader(dir)
	if err != nil {
		return err
	}

	for f, ferr := range r.Frames() {
		if ferr != nil {
			if frameFault(ferr) {
				env.log.Warn().Err(ferr).Int("index", f.Index).Msg("skipping faulty frame")
				continue
			}

			return ferr
		}

		if (index >= 0 && f.Index != index) || (seq >= 0 && f.Seq != seq) {
			continue
		}

		if raw {
			fmt.Fprint(env.stdout, inspect.Dump(f.Common))
			continue
		}

		name := fmt.Sprintf("Frame %d/%d", f.Index, f.Seq)
		if err := inspect.Render(env.stdout, inspect.Build(f, name)); err != nil {
			return err
		}
	}

	return nil
}

func runExport(env *cmdEnv, args []string) error {
	var out string

	env.flags.StringVarP(&out, "output", "o", "", "snapshot file to write")

	dir, err := env.parse(args)
	if err != nil {
		return err
	}

	if out == "" {
		return errors.New("--output is required")
	}

	r, err := env.reader(dir)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	stats, err := snapshot.Write(f, r.Frames())
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		_ = os.Remove(out)
		return err
	}

	env.log.Info().
		Int("frames", stats.Frames).
		Int("decoded", stats.Decoded).
		Int("faults", stats.Faults).
		Int64("bytes", stats.PayloadBytes).
		Str("file", out).
		Msg("snapshot written")

	return nil
}

// frameFault reports errors confined to a single frame.
func frameFault(err error) bool {
	return errors.Is(err, frame.ErrTruncated) || errors.Is(err, frame.ErrFrameTooLarge)
}
