// The tjp program is a taskwarrior-like command line interface to the todos stored in Joplin
// (https://joplinapp.org), through the Web Clipper service.
//
// Usage:
//
//	tjp [--options] [filters...] [command] [arguments...]
//
// Words before the command select todos: +tag and -tag require or exclude a tag, key:value
// matches a metadata value, a lowercase hex string is an id prefix (as shown in the ID column),
// anything else must appear in the title. The command defaults to next, which lists the selected
// todos by decreasing urgency. The other commands are add, done, modify, annotate, edit, cat (or
// show) and export. For add and modify, +tag and -tag add or remove a tag, key:value sets metadata
// (key: removes it), the remaining words make the title.
//
// Examples:
//
//	tjp add buy milk +errand due:2024-01-12 priority:H
//	tjp +errand
//	tjp a1 modify depends:b0 -errand
//	tjp a1 annotate called the shop
//	tjp a1 done
//
// The configuration is read from $HOME/.config/tjp/config.toml (see --config):
//
//	token = "..."                   # Web Clipper authorization token
//	url = "http://127.0.0.1:41184"
//	folder_todo = "..."             # notebook ids, see --list-notebooks
//	folder_done = "..."
//	folder_add = "..."
//	editor = "vim"
//	wire_log = "/tmp/tjp.wire.log"
//
// TJP_TOKEN and TJP_URL, possibly set from a .env file in the working directory, override the
// file. Options override both.
package main // import "github.com/nicolagi/tjp/cmd/tjp"
