package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kmlmap/internal/kml"
	"kmlmap/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "kmlmap [file]",
	Short: "count, measure and map the contents of a KML document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var m tea.Model
		if len(args) > 0 {
			m = tui.NewWithPath(args[0])
		} else {
			m = tui.New()
		}
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
		return err
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "print geometry counts and line lengths without the UI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := kml.ParseFile(args[0])
		if err != nil {
			return err
		}
		for _, typ := range []kml.GeometryType{
			kml.TypePoint,
			kml.TypeLineString,
			kml.TypeMultiLineString,
			kml.TypePlacemark,
		} {
			fmt.Printf("%-16s %d\n", typ, s.Counts[typ])
		}
		if len(s.Records) > 0 {
			fmt.Println()
			for i, rec := range s.Records {
				name := rec.Name
				if name == "" {
					name = "-"
				}
				fmt.Printf("%3d  %-16s %-24s %12.2f m  %d vertices\n",
					i+1, rec.Type, name, rec.Length, len(rec.Coordinates))
			}
			fmt.Printf("\ntotal length: %.2f m\n", s.TotalLength())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
