package cli

type Opts struct {
	File    string `short:"f" help:"Hosts file to operate on, defaults to the platform path"`
	Unicode bool   `default:"false" help:"Use the Unicode encoding for this invocation"`

	List struct {
		Sort string `short:"s" default:"file" enum:"file,address,hostname,comment" help:"Column to sort by"`
	} `cmd:"" help:"Prints the hosts entries"`

	Add struct {
		Host    string `arg:"" help:"Host name"`
		IP      string `arg:"" help:"IP address"`
		Comment string `short:"c" help:"Optional comment"`
	} `cmd:"" help:"Adds an entry and writes the file"`

	Remove struct {
		Host string `arg:"" help:"Host name"`
	} `cmd:"" help:"Removes all entries for a host name"`

	Import struct {
		Fname string `arg:"" help:"File to import entries from"`
	} `cmd:"" help:"Appends entries from another hosts file"`

	Export struct {
		Fname string `arg:"" help:"Destination file"`
	} `cmd:"" help:"Writes the entries to a file, always without the header"`

	Restore struct {
		Write bool `short:"w" default:"false" help:"Also writes the restored defaults to disk"`
	} `cmd:"" help:"Resets the entries to the platform defaults"`

	Backup struct {
		Create  struct{} `cmd:"" help:"Creates a backup of the hosts file"`
		Ls      struct{} `cmd:"" help:"Lists backups"`
		Restore struct {
			Name string `arg:"" help:"Backup name"`
		} `cmd:"" help:"Restores a backup over the hosts file"`
	} `cmd:"" help:"Backup related commands"`

	Config struct {
		Get struct{} `cmd:"" help:"Prints the stored preferences"`
		Set struct {
			Key   string `arg:"" enum:"file,encoding,backup-dir" help:"Preference key"`
			Value string `arg:"" help:"Preference value"`
		} `cmd:"" help:"Stores a preference"`
	} `cmd:"" help:"Preference related commands"`

	Flush struct{} `cmd:"" help:"Clears the platform resolver cache"`

	Logs struct{} `cmd:"" help:"Follows the hostsmith log"`

	Version struct{} `cmd:"" help:"Prints the version"`
}

var opts Opts
