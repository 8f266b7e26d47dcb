// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters implements --filter, the client side row selection shared
// by every listing command.
//
// A spec is a comma separated list of key, operator and target:
//
//	=  equal                 ~  equal ignoring case
//	^  prefix                @  substring, or membership for lists
//	<  less than             >  greater than (numeric when both are numbers)
//	/  regular expression
//
// Any operator may be negated with a leading !, as in Status!=ACTIVE. A key
// alone keeps rows where the value is present. Keys match an attr title
// first and are otherwise resolved as a path into the item.
//
// Keys prefixed with _ are not applied here. They are handed to the service
// where the API has its own filtering, for example
// _Type=SecureString on ssm params.
//
// Set AWSCTL_FILTER_DELIM to split expressions on something other than a
// comma.
package filters
