// Package shadps4 recovers GPU resource bindings from recompiled GCN
// shader programs.
//
// GCN shaders address buffers, images and samplers through 128- and
// 256-bit descriptors ("sharps") materialized in scalar registers at
// run time. After instruction selection those descriptors are opaque
// register values; before host shaders can be emitted, every access
// must instead name a binding slot. The resource tracking pass walks
// the instruction graph backward from each buffer or image access to
// the descriptor's origin, builds per-program descriptor tables, and
// rewrites the accesses in place to carry binding indices and
// normalized addresses.
//
// Typical use, given a translated program and its pipeline state:
//
//	info := &shader.Info{Stage: shader.StageFragment, PgmBase: base, Mem: mem}
//	copy(info.UserData[:], userSgprs)
//	if err := shadps4.TrackResources(prog, info); err != nil {
//	    return err
//	}
//	// info.Buffers, info.Images and info.Samplers now hold the
//	// bindings the rewritten program references.
//
// The packages underneath split the work: amdgpu decodes raw hardware
// descriptors, ir holds the instruction graph, shader carries
// per-program state, and passes implements the analysis itself.
package shadps4

import (
	"github.com/ThatOneCalculator/shadPS4/ir"
	"github.com/ThatOneCalculator/shadPS4/passes"
	"github.com/ThatOneCalculator/shadPS4/shader"
)

// TrackResources discovers every descriptor the program references,
// fills info's descriptor collections, and rewrites resource accesses
// to reference binding indices. It is the high-level entry point;
// callers needing individual stages can use the passes package
// directly.
func TrackResources(p *ir.Program, info *shader.Info) error {
	return passes.ResourceTrackingPass(p, info)
}
