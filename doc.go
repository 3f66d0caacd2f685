/*
Package socgen provides the build-time composition core of a system on chip:
a clock domain graph and an address-space composer.

The clock domain graph derives named clock domains from a single reference
oscillator, tracks reset sequencing between domains, and records cross-domain
timing constraints (period constraints and false-path exemptions). The
address-space composer registers memory-mapped peripheral regions, rejects
overlapping registrations eagerly, and answers address decode queries.

Neither component has a runtime phase. Both are configured once while a SoC
is assembled, then frozen; the frozen state is exported in a stable order for
downstream constraint-file and memory-map generators.

*/
package socgen
