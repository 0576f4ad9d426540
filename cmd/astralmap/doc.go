// 12 Mar 2026

/*
Astralmap collects taxon labels from a directory of alignment files
and writes the map file that astral wants for tying samples to
species.

Every file under the input directory whose name matches one of the
glob patterns is read. Nexus files (.nex, .nexus) give up their
labels from a TAXLABELS block, or failing that from the first word
of each MATRIX line, which also copes with interleaved matrices.
Fasta files (.fasta, .fa, .fas) give the first word after each ">".
A matched file with some other extension is examined, and if it does
not look like either format it is reported and skipped, unless you
asked for strict behaviour, in which case the run stops.

The labels from all files are pooled, made unique and sorted. The
map file gets one line per taxon,

	taxon<tab>group

The group comes from a table if you gave one with -g. That is a csv
or tsv file with a taxon column and a group column, with or without
a header line. A taxon missing from the table, or every taxon if
there is no table, gets the default group: itself ("species", the
usual thing for astral), the string "NA", or nothing.

Usage:
	astralmap [options] input-dir output-map

The flags are:
	-g file
		Table with taxon,group columns.
	-t file
		Also write the sorted list of taxa, one per line.
	-p patterns
		Comma separated glob patterns instead of
		*.nex,*.nexus,*.fasta,*.fa,*.fas
	-d mode
		Default group, one of species, NA or none.
	-s
		Strict. A file we cannot read or recognize kills the run
		and no output is written.
	-v
		Chatter on stderr while scanning.

Finding no taxa at all is an error. An empty map file helps nobody.
*/
package main
