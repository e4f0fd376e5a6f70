// Package mapfile loads and writes navigation maps.
//
// Two encodings are supported:
//
//   - the line-oriented text format
//
//     [rows,cols]
//     (x,y)                 start
//     (x,y) | (x,y) | ...   goals
//     (x,y,w,h)             one wall per line, until EOF or a blank line
//
//     Lines starting with '#' are ignored anywhere in the file.
//
//   - a YAML rendition of the same Map, for files ending in .yaml or .yml.
//
// Map.Build turns a decoded map into a grid.Grid and an agent.Agent.
package mapfile
