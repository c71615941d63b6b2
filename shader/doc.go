// Package shader holds the per-program metadata shared between
// recompilation stages: the shader stage, the user-data register
// window preloaded by the command processor, and the resource
// descriptors discovered while rewriting the instruction graph.
//
// An Info is created once per shader-program compilation, populated
// monotonically by the rewriting passes, and then read by the code
// generator and pipeline-layout builder. Nothing is ever removed from
// it, so binding indices handed out during the pass stay stable.
package shader
