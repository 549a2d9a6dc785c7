// Package cmd contains the Cobra commands of the runlength tool.
package cmd
