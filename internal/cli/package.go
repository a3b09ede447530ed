package cli

import (
	"fmt"
	"path/filepath"

	"github.com/Arshadjaved786/umrah-calculator/internal/export"
	"github.com/Arshadjaved786/umrah-calculator/internal/pkgstore"
	"github.com/Arshadjaved786/umrah-calculator/internal/pricing"
	"github.com/spf13/cobra"
)

var packageCmd = GroupCommand{
	Use:     "package",
	Aliases: []string{"pkg"},
	Short:   "Browse, export and remove saved packages",
	Subcommands: []*cobra.Command{
		packageListCmd,
		packageShowCmd,
		packageExportCmd,
		packageRemoveCmd,
	},
}.Build()

var packageListCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved packages, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runPackageList(cmd, dataDir)
	},
}.Build()

var packageShowCmd = LeafCommand{
	Use:   "show PACKAGE",
	Short: "Print a saved package",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runPackageShow(cmd, dataDir, args[0])
	},
}.Build()

var packageExportCmd = LeafCommand{
	Use:   "export PACKAGE",
	Short: "Write a saved package to a PDF file",
	Args:  cobra.ExactArgs(1),
	StrFlags: []StringFlag{
		{Name: "out", Usage: "output file (default <id>.pdf in the current directory)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		return runPackageExport(cmd, dataDir, args[0], out)
	},
}.Build()

var packageRemoveCmd = LeafCommand{
	Use:   "remove [PACKAGE]",
	Short: "Remove saved packages; pick from a list when no id is given",
	Args:  cobra.MaximumNArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		ref := ""
		if len(args) == 1 {
			ref = args[0]
		}
		yes, _ := cmd.Flags().GetBool("yes")
		kit := promptKitFor(cmd)
		kit.Confirm = ResolveConfirmFunc(cmd, yes)
		return runPackageRemove(cmd, dataDir, ref, kit)
	},
}.Build()

func packageLabel(p pkgstore.Package) string {
	title := p.Title
	if title == "" {
		title = "untitled"
	}
	return fmt.Sprintf("%s  %s  %s", p.CreatedAt.Local().Format("2006-01-02 15:04"), title,
		pricing.FormatAmount(p.Quote.Totals.SAR, pricing.SAR))
}

func runPackageList(cmd *cobra.Command, dataDir string) error {
	pkgs, err := openPackages(dataDir).List()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(pkgs) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No packages found."))
		return nil
	}
	for _, p := range pkgs {
		agency := ""
		if p.Agency != nil {
			agency = p.Agency.Name
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Silent(p.ID), Text(packageLabel(p)), Info(agency))
	}
	return nil
}

func runPackageShow(cmd *cobra.Command, dataDir, ref string) error {
	p, err := openPackages(dataDir).Find(ref)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	title := p.Title
	if title == "" {
		title = "Umrah package"
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Primary(title), Silent("("+p.ID+")"))
	if p.Agency != nil {
		_, _ = fmt.Fprintf(w, "%s\n", Info(p.Agency.Name))
	}
	_, _ = fmt.Fprintln(w)

	if p.Itinerary != nil {
		renderPlanTable(w, p.Itinerary.Projection(), travelInfosOf(p.Itinerary))
		_, _ = fmt.Fprintln(w)
	}
	printQuote(w, p.Input, p.Quote)
	return nil
}

func runPackageExport(cmd *cobra.Command, dataDir, ref, out string) error {
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return err
	}
	p, err := openPackages(dataDir).Find(ref)
	if err != nil {
		return err
	}
	if out == "" {
		out = p.ID + ".pdf"
	}
	out = filepath.Clean(out)

	profileURL := ""
	if p.Agency != nil {
		profileURL = agencyURL(cfg, p.Agency.Slug)
	}
	if err := export.WritePackagePDF(p, profileURL, out); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("exported package %s to %s", Silent(p.ID), Primary(out))))
	return nil
}

func runPackageRemove(cmd *cobra.Command, dataDir, ref string, kit PromptKit) error {
	store := openPackages(dataDir)

	var targets []pkgstore.Package
	if ref != "" {
		p, err := store.Find(ref)
		if err != nil {
			return err
		}
		targets = append(targets, p)
	} else {
		all, err := store.List()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Silent("No packages found."))
			return nil
		}
		labels := make([]string, len(all))
		for i, p := range all {
			labels[i] = packageLabel(p)
		}
		picked, err := kit.MultiSelect("Packages to remove", labels)
		if err != nil {
			return err
		}
		for _, i := range picked {
			targets = append(targets, all[i])
		}
		if len(targets) == 0 {
			return fmt.Errorf("no packages selected")
		}
	}

	ok, err := kit.Confirm(fmt.Sprintf("Remove %d package(s)?", len(targets)))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("aborted")
	}

	for _, p := range targets {
		if _, err := store.Delete(p.ID); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("package '%s' removed", Primary(p.ID))))
	}
	return nil
}
