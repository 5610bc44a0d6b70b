// SPDX-License-Identifier: MIT

// Command molhash prints atom hashes, molecule hashes and probable
// duplicates for molecules read from MDL molfiles or SD files.
//
//	molhash atoms ethanol.mol
//	molhash molecule --config molhash.yaml library.sdf
//	molhash dupes library.sdf -v 2
package main

import (
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	err := newRootCmd().Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
