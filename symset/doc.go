/*
Package symset implements ordered sets of token intervals.

Sets of token categories turn up in two places of an automaton runtime:
as labels of symbol-consuming transitions (an atom, a range, or a list of
alternatives) and as follow sets computed by reachability analysis. Both
favour a representation as a sorted list of closed intervals with
neighbouring intervals coalesced, so that membership tests are binary
searches and unions are linear merges.

A Set may be frozen once its construction is complete. Frozen sets reject
every mutation; this is what allows follow sets to be cached and handed
out to concurrent readers without defensive copying.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symset
