package config

// SampleConfig returns a documented configuration file with every option
func SampleConfig() string {
	return `# csvscope configuration
version: "1.0"

input:
  # field separator, a single character
  delimiter: ","
  # lines starting with this character are skipped (empty disables)
  comment: ""
  # accept bare quotes inside unquoted fields
  lazy_quotes: false
  # ignore spaces after a delimiter
  trim_leading_space: false
  # worksheet read from .xlsx inputs (empty uses the first sheet)
  sheet: ""
  # stop after this many records
  max_rows: 1000000

classification:
  # require every value of a column to parse before treating it as numeric
  strict_mode: false

ui:
  # starting colour palette: blue, emerald, indigo or red
  palette: blue
  # number of table rows visible around the selection
  row_window: 20
  chart_width: 48
  chart_height: 16
  no_emoji: false

output:
  # text, json, markdown or csv
  default_format: text
  verbose: false
  # decimals printed for statistics
  precision: 4
`
}

// MinimalSampleConfig returns a short configuration with common settings
func MinimalSampleConfig() string {
	return `version: "1.0"
input:
  delimiter: ","
classification:
  strict_mode: false
output:
  default_format: text
`
}
