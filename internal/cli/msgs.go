package cli

// Message constants
const (
	MsgRootShort = "Match files with glob patterns"
	MsgRootLong  = `globwalk evaluates glob patterns against the file system.

Patterns may start with a Unix root (/), a drive letter (C:), a UNC share
(//server) or nothing, in which case they are relative to the working
directory. Both / and \ separate segments.

  *    any run of characters within one segment
  ?    exactly one character
  **   zero or more directory levels (must be a whole segment)
  ..   the parent directory
  .    the current directory`

	MsgMatchShort   = "Print the paths matching one or more patterns"
	MsgMatchLong    = "Evaluate every pattern and print the union of their matches. Directories that cannot be read are skipped."
	MsgMatchExample = `  globwalk match '**/*.go'
  globwalk match --type files --exclude node_modules 'src/**'
  globwalk match --format json 'C:\Users\*\Documents\*.docx'
  globwalk match --require-match ./build.cake`

	MsgParseShort   = "Show how a pattern is compiled"
	MsgParseLong    = "Parse a pattern and print its root and segments, including the regular expression each wildcard segment compiles to."
	MsgParseExample = `  globwalk parse '/src/**/file?.txt'
  globwalk parse --format yaml '\\server\share\*.log'`

	MsgConfigShort = "Print the effective configuration"
	MsgConfigLong  = "Print the configuration after merging defaults, the project file, GLOBWALK_* environment variables and flags."

	MsgConfigInitShort   = "Generate a project configuration file"
	MsgConfigInitLong    = "Output the default configuration with every setting commented out, or write it to .globwalk.toml in the config directory."
	MsgConfigInitExample = `  globwalk config init                 # Output to stdout
  globwalk config init -w              # Write to ./.globwalk.toml`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	MsgNoMatch     = "no paths matched"
	MsgConfigExist = "config file %s already exists (use --force to overwrite)"
)
