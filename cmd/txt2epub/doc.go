// Command txt2epub converts a plain-text novel with Chinese volume and
// chapter markers into an ePub book.
//
//	txt2epub novel.txt [cover.jpg]
//	txt2epub inspect novel.txt
//	txt2epub config init
//
// Arguments to the root command are classified by extension, so the text
// file and the cover image may be given in either order. The book is written
// next to the text file unless --output is set.
package main
