package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/term"

	"github.com/scode/masterpassword/commands"
	"github.com/scode/masterpassword/preader"
	"github.com/scode/masterpassword/siteconfig"
	"github.com/scode/masterpassword/sitedesc"
)

var typeHelp = `the site's template (defaults to 'long' for password, 'name' for login, 'phrase' for answer)

   x, max, maximum   20 characters, contains symbols.
   l, long           Copy-friendly, 14 characters, contains symbols.
   m, med, medium    Copy-friendly, 8 characters, contains symbols.
   b, basic          8 characters, no symbols.
   s, short          Copy-friendly, 4 characters, no symbols.
   i, pin            4 numbers.
   n, name           9 letter name.
   p, phrase         18 or 20 character sentence.`

var variantHelp = `the kind of content to generate (defaults to 'password')

   p, password  generate a password
   l, login     generate a login name
   a, answer    generate an answer to a question`

// sitePasswordPrompter reads the credential to be stored for a site,
// prompting with wording distinct from the master password prompt when
// stdin is a terminal.
type sitePasswordPrompter struct{}

func (r *sitePasswordPrompter) ReadMasterPassword() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if _, err := fmt.Fprint(os.Stderr, "Site password to store: "); err != nil {
			return "", err
		}
		credential, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", fmt.Errorf("mpw: reading site password: %w", err)
		}
		fmt.Fprintln(os.Stderr)
		return string(credential), nil
	}
	return preader.NewReader(os.Stdin).ReadMasterPassword()
}

func loadConfig(configPath string) (siteconfig.Config, error) {
	if configPath == "" {
		return siteconfig.Config{}, nil
	}
	return siteconfig.ReadFile(configPath)
}

// mergeSite inserts or replaces the site named rec.Name in cfg's site list.
func mergeSite(cfg *siteconfig.Config, rec sitedesc.Record) {
	for i := range cfg.Sites {
		if cfg.Sites[i].Name == rec.Name {
			cfg.Sites[i] = rec
			return
		}
	}
	cfg.Sites = append(cfg.Sites, rec)
}

func paramRecord(c *cli.Context, siteName string) sitedesc.Record {
	rec := sitedesc.Record{Name: siteName}
	if t := c.String("type"); t != "" {
		rec.Type = t
	}
	if c.IsSet("counter") {
		counter := uint32(c.Uint("counter"))
		rec.Counter = &counter
	}
	if v := c.String("variant"); v != "" {
		rec.Variant = v
	}
	if ctx := c.String("context"); ctx != "" {
		rec.Context = ctx
	}
	return rec
}

func run(c *cli.Context) error {
	configPath := c.String("config")
	siteName := c.Args().First()

	if c.Bool("dump") {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		fmt.Print(cfg.Encode())
		return nil
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	fullName := c.String("name")
	if fullName == "" {
		fullName = cfg.FullName
	}
	if fullName == "" {
		return errors.New("mpw: full name is required; pass --name or set full_name in the config file")
	}
	cfg.FullName = fullName

	if siteName == "" && len(cfg.Sites) == 0 && !c.Bool("store") {
		return errors.New("mpw: a site name is required unless a configuration file supplies one")
	}

	masterPasswordReader := &preader.StdinMasterPasswordReader{}
	cachingMasterPasswordReader := &preader.CachingMasterPasswordReader{Upstream: masterPasswordReader}

	if siteName != "" {
		mergeSite(&cfg, paramRecord(c, siteName))
	}

	if c.Bool("store") {
		if siteName == "" || configPath == "" {
			return errors.New("mpw: --store requires both a site name and --config")
		}

		key, err := commands.MasterKey(fullName, cachingMasterPasswordReader)
		if err != nil {
			return err
		}
		defer key.Release()

		identicon, err := commands.Identicon(fullName, cachingMasterPasswordReader)
		if err != nil {
			return err
		}
		fmt.Printf("Identicon: %s\n", identicon)

		rec, err := commands.Store(siteName, key.Bytes(), &sitePasswordPrompter{})
		if err != nil {
			return err
		}
		mergeSite(&cfg, rec)

		return siteconfig.WriteFile(configPath, cfg)
	}

	key, err := commands.MasterKey(fullName, cachingMasterPasswordReader)
	if err != nil {
		return err
	}
	defer key.Release()

	identicon, err := commands.Identicon(fullName, cachingMasterPasswordReader)
	if err != nil {
		return err
	}
	fmt.Printf("Identicon: %s\n", identicon)

	records := cfg.Sites
	if siteName != "" {
		records = nil
		for _, rec := range cfg.Sites {
			if rec.Name == siteName {
				records = append(records, rec)
			}
		}
	}

	shown, err := commands.Show(key.Bytes(), records)
	if err != nil {
		return err
	}
	defer func() {
		for _, s := range shown {
			s.Credential.Release()
		}
	}()

	for _, s := range shown {
		fmt.Printf("Password for %s: %s\n", s.Descriptor.Name, s.Credential.String())
	}

	return nil
}

var appFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "name, u",
		Usage: "the full name of the user (optional if given in config)",
	},
	cli.StringFlag{
		Name:  "type, t",
		Usage: typeHelp,
	},
	cli.UintFlag{
		Name:  "counter, c",
		Usage: "the value of the site counter",
	},
	cli.StringFlag{
		Name:  "variant, v",
		Usage: variantHelp,
	},
	cli.StringFlag{
		Name:  "context, C",
		Usage: "empty for a universal site or the most significant word(s) of the question",
	},
	cli.StringFlag{
		Name:  "config, f",
		Usage: "read (and, with --store, write) configuration from a file",
	},
	cli.BoolFlag{
		Name:  "store, s",
		Usage: "encrypt and store a credential for the given site",
	},
	cli.BoolFlag{
		Name:  "dump, d",
		Usage: "dump the configuration",
	},
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "mpw"
	app.Version = "master"
	app.Usage = "a stateless password management solution"
	app.ArgsUsage = "[site]"
	app.Flags = appFlags
	app.Action = run
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
