/*
Package tna implements a transition-network automaton runtime.

TNA models the state/transition network which a generated parser or lexer
walks at runtime: rule entry and exit states, decision points, lexer modes,
and the follow-set queries that tell a driver which input symbols may
legally come next from any point in the network. Package structure is
as follows:

■ atn: Package atn holds the automaton graph itself, together with the
follow-set analyzer, the expected-token resolver and the per-decision and
per-mode memoization slots used by external prediction engines.

■ atn/pcontext: Package pcontext implements hash-consed, mergeable
representations of rule-invocation stack suffixes ("prediction contexts").

■ symset: Package symset provides ordered sets of token intervals, used
for transition labels and follow sets.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tna
