/*
Package people is the bundled feature built on the action store: an in-memory list of people, the
handlers answering its actions, a list view model and the person detail presentor.

Nothing here calls another feature directly. The list asks for data by dispatching
PEOPLE.GET_ALL.ACTION and receives it on PEOPLE.ALL.ACTION; a selected person is shown by coordinating
an envelope aimed at PERSON.DETAIL.ACTION; an edit is persisted by dispatching PERSON.UPDATE.ACTION.
*/
package people
