package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/grindlemire/layerkit/library"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the layouts in the library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, closeFn, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		printEntries(cmd, m)
		if !listWatch {
			return nil
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		err = m.Watch(ctx, time.Second, func([]library.Entry) { printEntries(cmd, m) })
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func printEntries(cmd *cobra.Command, m *library.Manager) {
	sel, _ := m.Selected()
	t := newTable("", "file", "name", "version", "status")
	for _, e := range m.Entries() {
		mark, status := "", okStyle.Render("ok")
		if e.File == sel.File {
			mark = "*"
		}
		if !e.Supported {
			status = warnStyle.Render("newer editor")
		}
		t.Row(mark, e.File, e.Title(), strconv.Itoa(e.Layout.EditorVersion), status)
	}
	fmt.Fprintln(cmd.OutOrStdout(), field("library", m.Dir()))
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
}

var selectCmd = &cobra.Command{
	Use:   "select <file-name>",
	Short: "Select the layout used by the game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, closeFn, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		if err := m.Select(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "selected %s\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Copy a layout into the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, closeFn, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		file, err := m.Import(cmd.Context(), f)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %s as %s\n", args[0], file)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <file-name>",
	Short: "Remove a layout from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, closeFn, err := openLibrary(cmd)
		if err != nil {
			return err
		}
		defer closeFn()
		if err := m.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

var listWatch bool

func init() {
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "keep running and reprint when the library changes")
	rootCmd.AddCommand(listCmd, selectCmd, importCmd, deleteCmd)
}
