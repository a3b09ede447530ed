package cli

import (
	"fmt"

	"github.com/Arshadjaved786/umrah-calculator/internal/config"
	"github.com/Arshadjaved786/umrah-calculator/internal/export"
	"github.com/spf13/cobra"
)

var agencyCmd = GroupCommand{
	Use:   "agency",
	Short: "Manage the agency profile printed on quotes",
	Subcommands: []*cobra.Command{
		agencySetCmd,
		agencyShowCmd,
		agencyListCmd,
		agencyUseCmd,
		agencyQRCmd,
	},
}.Build()

var agencySetCmd = LeafCommand{
	Use:   "set",
	Short: "Create a profile, or update the one named by --slug",
	Example: "  umrahplan agency set --name \"Al Noor Travels\" --whatsapp +923001234567\n" +
		"  umrahplan agency set --slug al-noor-travels --email info@alnoor.pk",
	StrFlags: []StringFlag{
		{Name: "name", Usage: "agency name; prompted when creating without one"},
		{Name: "slug", Usage: "profile slug; an existing slug is updated"},
		{Name: "contact", Usage: "contact person or phone"},
		{Name: "email", Usage: "email address"},
		{Name: "address", Usage: "office address"},
		{Name: "whatsapp", Usage: "WhatsApp number"},
		{Name: "website", Usage: "website URL"},
		{Name: "note", Usage: "free text shown on quotes"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		f := cmd.Flags()
		var a config.Agency
		a.Name, _ = f.GetString("name")
		a.Slug, _ = f.GetString("slug")
		a.Contact, _ = f.GetString("contact")
		a.Email, _ = f.GetString("email")
		a.Address, _ = f.GetString("address")
		a.Whatsapp, _ = f.GetString("whatsapp")
		a.Website, _ = f.GetString("website")
		a.Note, _ = f.GetString("note")
		return runAgencySet(cmd, dataDir, a, promptKitFor(cmd))
	},
}.Build()

var agencyShowCmd = LeafCommand{
	Use:   "show",
	Short: "Print the active profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAgencyShow(cmd, dataDir)
	},
}.Build()

var agencyListCmd = LeafCommand{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAgencyList(cmd, dataDir)
	},
}.Build()

var agencyUseCmd = LeafCommand{
	Use:   "use SLUG",
	Short: "Make a saved profile active",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		return runAgencyUse(cmd, dataDir, args[0])
	},
}.Build()

var agencyQRCmd = LeafCommand{
	Use:   "qr",
	Short: "Write a QR code PNG of the active profile link",
	StrFlags: []StringFlag{
		{Name: "out", Usage: "output file (default <slug>-qr.png)"},
	},
	IntFlags: []IntFlag{
		{Name: "size", Usage: "image size in pixels", Default: export.DefaultQRSize},
	},
	BoolFlags: []BoolFlag{
		{Name: "text", Usage: "only print the profile link"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := getDataDir()
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		size, _ := cmd.Flags().GetInt("size")
		textOnly, _ := cmd.Flags().GetBool("text")
		return runAgencyQR(cmd, dataDir, out, size, textOnly)
	},
}.Build()

func runAgencySet(cmd *cobra.Command, dataDir string, a config.Agency, kit PromptKit) error {
	cfg, err := config.Read(dataDir)
	if err != nil {
		return err
	}

	exists := false
	if a.Slug != "" {
		for _, existing := range cfg.Agencies {
			if existing.Slug == a.Slug {
				exists = true
			}
		}
	}
	if !exists && a.Name == "" {
		if a.Name, err = kit.Prompt("Agency name"); err != nil {
			return err
		}
	}

	saved, err := cfg.SaveAgency(a)
	if err != nil {
		return err
	}
	if err := config.Write(dataDir, cfg); err != nil {
		return err
	}

	verb := "saved"
	if exists {
		verb = "updated"
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("agency '%s' %s (%s)", Primary(saved.Name), verb, Silent(saved.Slug))))
	return nil
}

func runAgencyShow(cmd *cobra.Command, dataDir string) error {
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return err
	}
	a, profileURL := agencyProfile(cfg)
	if a == nil {
		return fmt.Errorf("no agency profile; run 'umrahplan agency set' first")
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %s\n", Primary(a.Name), Silent("("+a.Slug+")"))
	for _, field := range []struct{ label, value string }{
		{"Contact", a.Contact},
		{"Email", a.Email},
		{"Address", a.Address},
		{"WhatsApp", a.Whatsapp},
		{"Website", a.Website},
		{"Note", a.Note},
	} {
		if field.value == "" {
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", Silent(padRight(field.label, 9)), Text(field.value))
	}
	_, _ = fmt.Fprintf(w, "  %s %s\n", Silent(padRight("Profile", 9)), Info(profileURL))
	return nil
}

func runAgencyList(cmd *cobra.Command, dataDir string) error {
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if len(cfg.Agencies) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No agency profiles found."))
		return nil
	}
	for _, a := range cfg.Agencies {
		marker := "  "
		if a.Slug == cfg.ActiveAgency {
			marker = "* "
		}
		_, _ = fmt.Fprintf(w, "%s%s  %s\n", Primary(marker), Text(padRight(a.Slug, 24)), Text(a.Name))
	}
	return nil
}

func runAgencyUse(cmd *cobra.Command, dataDir, slug string) error {
	cfg, err := config.Read(dataDir)
	if err != nil {
		return err
	}
	if err := cfg.UseAgency(slug); err != nil {
		return err
	}
	if err := config.Write(dataDir, cfg); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("now using agency '%s'", Primary(cfg.Agency().Name))))
	return nil
}

func runAgencyQR(cmd *cobra.Command, dataDir, out string, size int, textOnly bool) error {
	cfg, err := loadConfig(dataDir)
	if err != nil {
		return err
	}
	a, profileURL := agencyProfile(cfg)
	if a == nil {
		return fmt.Errorf("no agency profile; run 'umrahplan agency set' first")
	}

	w := cmd.OutOrStdout()
	if textOnly {
		_, _ = fmt.Fprintln(w, profileURL)
		return nil
	}
	if out == "" {
		out = a.Slug + "-qr.png"
	}
	if err := export.WriteQR(profileURL, out, size); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("QR code for %s written to %s", Info(profileURL), Primary(out))))
	return nil
}
